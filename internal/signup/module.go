package signup

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/unifydesk/internal/pkg/clock"
	"github.com/shandysiswandi/unifydesk/internal/pkg/hash"
	"github.com/shandysiswandi/unifydesk/internal/pkg/idempotency"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"github.com/shandysiswandi/unifydesk/internal/signup/inbound"
	"github.com/shandysiswandi/unifydesk/internal/signup/outbound/db"
	"github.com/shandysiswandi/unifydesk/internal/signup/outbound/mq"
	"github.com/shandysiswandi/unifydesk/internal/signup/usecase"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	SID         uid.StringID               `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbUser := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbUser,
		RepoMessaging: repoMsg,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		SID:           dep.SID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
