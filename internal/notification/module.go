package notification

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/unifydesk/internal/notification/inbound"
	"github.com/shandysiswandi/unifydesk/internal/notification/outbound/db"
	"github.com/shandysiswandi/unifydesk/internal/notification/outbound/email"
	outsms "github.com/shandysiswandi/unifydesk/internal/notification/outbound/sms"
	"github.com/shandysiswandi/unifydesk/internal/notification/usecase"
	"github.com/shandysiswandi/unifydesk/internal/pkg/clock"
	"github.com/shandysiswandi/unifydesk/internal/pkg/config"
	"github.com/shandysiswandi/unifydesk/internal/pkg/goroutine"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/mail"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sms"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	DBConn     *pgxpool.Pool              `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	SMS        sms.Sender                 `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbNotif := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)
	repoSMS := outsms.New(dep.SMS, dep.Instrument)

	uc := usecase.NewNotification(usecase.Dependency{
		RepoDB:     dbNotif,
		RepoMail:   repoMail,
		RepoSMS:    repoSMS,
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
