package inbound

import (
	"context"

	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/signup/usecase"
)

type uc interface {
	CheckUsername(ctx context.Context, in usecase.CheckUsernameInput) (*usecase.AvailabilityOutput, error)
	CheckEmail(ctx context.Context, in usecase.CheckEmailInput) (*usecase.AvailabilityOutput, error)
	CheckPhone(ctx context.Context, in usecase.CheckPhoneInput) (*usecase.AvailabilityOutput, error)
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.SignupOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Availability checks for the registration form
	r.GET("/api/check-username/:username", end.CheckUsername)
	r.GET("/api/check-email/:email", end.CheckEmail)
	r.GET("/api/check-phone/:phone", end.CheckPhone)

	r.POST("/api/signup", end.Signup)
}
