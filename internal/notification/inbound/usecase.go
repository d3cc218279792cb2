package inbound

import (
	"context"

	"github.com/shandysiswandi/unifydesk/internal/notification/usecase"
)

type uc interface {
	ConsumeOtpIssued(ctx context.Context, in usecase.ConsumeOtpIssuedInput) error
	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
}
