package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
)

// States returns the selectable states, preferring cache, then the upstream
// provider, then the built-in fallback list so the signup form always has
// something to render.
func (s *Usecase) States(ctx context.Context) ([]entity.State, error) {
	ctx, span := s.startSpan(ctx, "States")
	defer span.End()

	if states, err := s.repoCache.GetStates(ctx); err == nil && len(states) > 0 {
		return states, nil
	}

	states, err := s.repoUpstream.States(ctx)
	if err != nil {
		slog.WarnContext(ctx, "state lookup upstream failed, serving fallback", "error", err)
		return fallbackStates, nil
	}

	if err := s.repoCache.SetStates(ctx, states, s.cacheTTL); err != nil {
		slog.WarnContext(ctx, "failed to cache states", "error", err)
	}

	return states, nil
}
