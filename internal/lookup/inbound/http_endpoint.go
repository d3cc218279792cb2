package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
	"github.com/shandysiswandi/unifydesk/internal/lookup/usecase"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the region lookups.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) States(r *router.Request) (any, error) {
	states, err := h.uc.States(r.Context())
	if err != nil {
		return nil, err
	}

	return StatesResponse{
		States: lo.Map(states, func(s entity.State, _ int) StateItem {
			return StateItem{Name: s.Name, Code: s.Code}
		}),
	}, nil
}

func (h *HTTPEndpoint) Cities(r *router.Request) (any, error) {
	cities, err := h.uc.Cities(r.Context(), usecase.CitiesInput{
		State: r.GetParam("state"),
	})
	if err != nil {
		return nil, err
	}

	return CitiesResponse{Cities: cities}, nil
}
