package inbound

import (
	"context"

	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
	"github.com/shandysiswandi/unifydesk/internal/lookup/usecase"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
)

type uc interface {
	States(ctx context.Context) ([]entity.State, error)
	Cities(ctx context.Context, in usecase.CitiesInput) ([]string, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Region lookups for the signup form
	r.GET("/api/states", end.States)
	r.GET("/api/cities/:state", end.Cities)
}
