package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/unifydesk/internal/pkg/clock"
	"github.com/shandysiswandi/unifydesk/internal/pkg/config"
	"github.com/shandysiswandi/unifydesk/internal/pkg/goroutine"
	"github.com/shandysiswandi/unifydesk/internal/pkg/hash"
	"github.com/shandysiswandi/unifydesk/internal/pkg/idempotency"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/mail"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
	"github.com/shandysiswandi/unifydesk/internal/pkg/otp"
	"github.com/shandysiswandi/unifydesk/internal/pkg/ratelimit"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sms"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	otpCode   otp.Generator

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	limiter   ratelimit.Limiter
	mail      mail.Mail
	sms       sms.Sender
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initSMS()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
