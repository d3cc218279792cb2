package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/pkg/clock"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/otp"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
	"go.opentelemetry.io/otel/trace"
)

type OtpIssuedEvent struct {
	Identifier string
	Type       entity.OtpType
	Code       string
	ExpiresIn  time.Duration
}

type repoMessaging interface {
	PublishOtpIssued(ctx context.Context, msg OtpIssuedEvent) error
}

type repoDB interface {
	GetValidOtp(ctx context.Context, identifier string, t entity.OtpType, now time.Time) (*entity.OtpRecord, error)
	ReplaceOtp(ctx context.Context, rec entity.OtpRecord) error
	IncrementOtpAttempts(ctx context.Context, id int64) (int, error)
	DeleteOtp(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	uid           uid.NumberID
	code          otp.Generator
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	UID           uid.NumberID
	Code          otp.Generator
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		uid:           dep.UID,
		code:          dep.Code,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("verification.usecase").Start(ctx, name)
}
