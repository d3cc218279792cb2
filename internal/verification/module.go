package verification

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/unifydesk/internal/pkg/clock"
	"github.com/shandysiswandi/unifydesk/internal/pkg/config"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
	"github.com/shandysiswandi/unifydesk/internal/pkg/otp"
	"github.com/shandysiswandi/unifydesk/internal/pkg/ratelimit"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"github.com/shandysiswandi/unifydesk/internal/verification/inbound"
	"github.com/shandysiswandi/unifydesk/internal/verification/outbound/db"
	"github.com/shandysiswandi/unifydesk/internal/verification/outbound/mq"
	"github.com/shandysiswandi/unifydesk/internal/verification/usecase"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	RateLimiter ratelimit.Limiter          `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Code        otp.Generator              `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbOtp := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbOtp,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		UID:           dep.UID,
		Code:          dep.Code,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	limit := router.RateLimit(dep.RateLimiter, ratelimit.Rule{
		Prefix:      "ratelimit:otp",
		Window:      dep.Config.GetSecond("modules.verification.rate_limit.window_seconds"),
		MaxRequests: dep.Config.GetInt("modules.verification.rate_limit.max_requests"),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, limit)

	return nil
}
