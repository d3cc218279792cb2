package lookup

import (
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/unifydesk/internal/lookup/inbound"
	"github.com/shandysiswandi/unifydesk/internal/lookup/outbound/cache"
	"github.com/shandysiswandi/unifydesk/internal/lookup/outbound/csc"
	"github.com/shandysiswandi/unifydesk/internal/lookup/usecase"
	"github.com/shandysiswandi/unifydesk/internal/pkg/config"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
)

type Dependency struct {
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoCache := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoUpstream := csc.NewClient(
		dep.Config.GetString("modules.lookup.csc.base_url"),
		dep.Config.GetString("modules.lookup.csc.api_key"),
		dep.Config.GetSecond("modules.lookup.csc.timeout_seconds"),
		dep.Instrument,
	)

	uc := usecase.New(usecase.Dependency{
		RepoCache:    repoCache,
		RepoUpstream: repoUpstream,
		Validator:    dep.Validator,
		CacheTTL:     dep.Config.GetDay("modules.lookup.cache_ttl_days"),
		Instrument:   dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
