package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/unifydesk/internal/notification/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sqlc"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn  *pgxpool.Pool
	query *sqlc.Queries
	ins   instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn:  conn,
		query: sqlc.New(conn),
		ins:   ins,
	}
}

func (d *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return d.ins.Tracer("notification.outbound.db").Start(ctx, name)
}

func (d *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (d *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (d *DB) CreateDeliveryLog(ctx context.Context, dl entity.CreateDeliveryLog) error {
	ctx, span := d.startSpan(ctx, "CreateDeliveryLog")

	err := d.query.CreateDeliveryLog(ctx, sqlc.CreateDeliveryLogParams{
		ID:        dl.ID,
		Channel:   dl.Channel.String(),
		Recipient: dl.Recipient,
		Subject:   dl.Subject,
		Status:    dl.Status.String(),
	})
	err = d.mapError(err)
	d.endSpan(span, err)

	return err
}

func (d *DB) UpdateDeliveryLogStatus(ctx context.Context, u entity.UpdateDeliveryLog) error {
	ctx, span := d.startSpan(ctx, "UpdateDeliveryLogStatus")

	resp, err := json.Marshal(u.ProviderResponse)
	if err != nil {
		d.endSpan(span, err)
		return err
	}

	err = d.query.UpdateDeliveryLogStatus(ctx, sqlc.UpdateDeliveryLogStatusParams{
		ID:               u.ID,
		Status:           u.Status.String(),
		ProviderResponse: resp,
	})
	err = d.mapError(err)
	d.endSpan(span, err)

	return err
}
