package usecase

import (
	"context"

	"github.com/shandysiswandi/unifydesk/internal/pkg/clock"
	"github.com/shandysiswandi/unifydesk/internal/pkg/hash"
	"github.com/shandysiswandi/unifydesk/internal/pkg/idempotency"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"github.com/shandysiswandi/unifydesk/internal/signup/entity"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID    int64
	Username  string
	Email     string
	FirstName string
	LastName  string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	ExistsUserByUsername(ctx context.Context, username string) (bool, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
	ExistsUserByPhone(ctx context.Context, phone string) (bool, error)
	NewSignup(ctx context.Context, user entity.NewUser, sess entity.Session, hash string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	bcrypt        hash.Hash
	uid           uid.NumberID
	sid           uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Bcrypt        hash.Hash
	UID           uid.NumberID
	SID           uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		sid:           dep.SID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("signup.usecase").Start(ctx, name)
}
