package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoCache interface {
	GetStates(ctx context.Context) ([]entity.State, error)
	SetStates(ctx context.Context, states []entity.State, ttl time.Duration) error
	GetCities(ctx context.Context, state string) ([]string, error)
	SetCities(ctx context.Context, state string, cities []string, ttl time.Duration) error
}

type repoUpstream interface {
	States(ctx context.Context) ([]entity.State, error)
	Cities(ctx context.Context, state string) ([]string, error)
}

type Usecase struct {
	repoCache    repoCache
	repoUpstream repoUpstream
	validator    validator.Validator
	cacheTTL     time.Duration
	ins          instrument.Instrumentation
}

type Dependency struct {
	RepoCache    repoCache
	RepoUpstream repoUpstream
	Validator    validator.Validator
	CacheTTL     time.Duration
	Instrument   instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	if dep.CacheTTL <= 0 {
		dep.CacheTTL = 24 * time.Hour
	}

	return &Usecase{
		repoCache:    dep.RepoCache,
		repoUpstream: dep.RepoUpstream,
		validator:    dep.Validator,
		cacheTTL:     dep.CacheTTL,
		ins:          dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("lookup.usecase").Start(ctx, name)
}
