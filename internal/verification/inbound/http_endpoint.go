package inbound

import (
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/verification/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the OTP issue and verify workflows.
type HTTPEndpoint struct {
	uc uc
}

// SendOtp issues a fresh one-time code for an email address or phone number.
func (h *HTTPEndpoint) SendOtp(r *router.Request) (any, error) {
	var req SendOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SendOtp(r.Context(), usecase.SendOtpInput{
		Identifier: req.Identifier,
		Type:       req.Type,
	})
	if err != nil {
		return nil, err
	}

	return SendOtpResponse{
		Success:           true,
		AttemptsRemaining: resp.AttemptsRemaining,
		ResendRemaining:   resp.ResendRemaining,
	}, nil
}

// VerifyOtp checks a submitted code and consumes the record on success.
func (h *HTTPEndpoint) VerifyOtp(r *router.Request) (any, error) {
	var req VerifyOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyOtp(r.Context(), usecase.VerifyOtpInput{
		Identifier: req.Identifier,
		Type:       req.Type,
		Code:       req.Code,
	}); err != nil {
		return nil, err
	}

	return VerifyOtpResponse{Success: true}, nil
}
