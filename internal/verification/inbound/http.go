package inbound

import (
	"context"

	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/verification/usecase"
)

type uc interface {
	SendOtp(ctx context.Context, in usecase.SendOtpInput) (*usecase.SendOtpOutput, error)
	VerifyOtp(ctx context.Context, in usecase.VerifyOtpInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, limit router.Middleware) {
	end := &HTTPEndpoint{uc: uc}

	// Only issuance is rate limited per client address. Verify is
	// throttled by the per-record attempt cap instead.
	r.POST("/api/send-otp", end.SendOtp, limit)
	r.POST("/api/verify-otp", end.VerifyOtp)
}
