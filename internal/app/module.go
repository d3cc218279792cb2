package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/unifydesk/internal/lookup"
	"github.com/shandysiswandi/unifydesk/internal/notification"
	"github.com/shandysiswandi/unifydesk/internal/signup"
	"github.com/shandysiswandi/unifydesk/internal/verification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.verification.enabled") {
		if err := verification.New(verification.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Messaging:   a.messaging,
			RateLimiter: a.limiter,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Code:        a.otpCode,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module verification", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.signup.enabled") {
		if err := signup.New(signup.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Messaging:   a.messaging,
			Idempotency: a.idemp,
			Instrument:  a.ins,
			UID:         a.uid,
			SID:         a.oid,
			Bcrypt:      a.bcrypt,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module signup", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.lookup.enabled") {
		if err := lookup.New(lookup.Dependency{
			CacheConn:  a.cacheConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module lookup", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
			SMS:        a.sms,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
