package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
)

type CitiesInput struct {
	State string `validate:"required,min=2,max=100"`
}

// Cities returns the cities of one state, with the same cache, upstream,
// fallback preference as States.
func (s *Usecase) Cities(ctx context.Context, in CitiesInput) ([]string, error) {
	ctx, span := s.startSpan(ctx, "Cities")
	defer span.End()

	in.State = strings.ToUpper(strings.TrimSpace(in.State))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if cities, err := s.repoCache.GetCities(ctx, in.State); err == nil && len(cities) > 0 {
		return cities, nil
	}

	cities, err := s.repoUpstream.Cities(ctx, in.State)
	if err != nil {
		slog.WarnContext(ctx, "city lookup upstream failed, serving fallback", "state", in.State, "error", err)

		cities, ok := fallbackCities[in.State]
		if !ok {
			return nil, goerror.NewBusiness("State not found", goerror.CodeNotFound)
		}
		return cities, nil
	}

	if err := s.repoCache.SetCities(ctx, in.State, cities, s.cacheTTL); err != nil {
		slog.WarnContext(ctx, "failed to cache cities", "state", in.State, "error", err)
	}

	return cities, nil
}
