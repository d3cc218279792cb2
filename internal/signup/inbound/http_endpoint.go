package inbound

import (
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/signup/usecase"
)

// HTTPEndpoint exposes HTTP handlers for account creation and the
// availability checks the registration form calls while the user types.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) CheckUsername(r *router.Request) (any, error) {
	resp, err := h.uc.CheckUsername(r.Context(), usecase.CheckUsernameInput{
		Username: r.GetParam("username"),
	})
	if err != nil {
		return nil, err
	}

	return AvailabilityResponse{Available: resp.Available}, nil
}

func (h *HTTPEndpoint) CheckEmail(r *router.Request) (any, error) {
	resp, err := h.uc.CheckEmail(r.Context(), usecase.CheckEmailInput{
		Email: r.GetParam("email"),
	})
	if err != nil {
		return nil, err
	}

	return AvailabilityResponse{Available: resp.Available}, nil
}

func (h *HTTPEndpoint) CheckPhone(r *router.Request) (any, error) {
	resp, err := h.uc.CheckPhone(r.Context(), usecase.CheckPhoneInput{
		Phone: r.GetParam("phone"),
	})
	if err != nil {
		return nil, err
	}

	return AvailabilityResponse{Available: resp.Available}, nil
}

// Signup creates the account once both contact points went through OTP
// verification on the client.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Username:       req.Username,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Nationality:    req.Nationality,
		State:          req.State,
		City:           req.City,
		Address:        req.Address,
		EmailVerified:  req.EmailVerified,
		PhoneVerified:  req.PhoneVerified,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{
		UserID:    resp.UserID,
		Username:  resp.Username,
		SessionID: resp.SessionID,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}
