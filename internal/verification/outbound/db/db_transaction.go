package db

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sqlc"
	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
)

// otpLockKeys derives the advisory lock pair for an (identifier, type).
// otp_codes has no unique constraint on the pair, so issuance serializes on
// this lock instead of relying on delete visibility under READ COMMITTED.
func otpLockKeys(identifier string, t entity.OtpType) (int32, int32) {
	h := fnv.New32a()
	h.Write([]byte(identifier))

	return int32(h.Sum32()), int32(t)
}

// ReplaceOtp deletes every code for the (identifier, type) pair and inserts
// the fresh one in a single transaction. The pair is locked for the
// transaction, so two concurrent issues cannot both pass the delete and
// leave two valid records.
func (s *DB) ReplaceOtp(ctx context.Context, rec entity.OtpRecord) (err error) {
	ctx, span := s.startSpan(ctx, "ReplaceOtp")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	idKey, typeKey := otpLockKeys(rec.Identifier, rec.Type)
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", idKey, typeKey); err != nil {
		return s.mapError(err)
	}

	wtx := s.query.WithTx(tx)

	if err := wtx.DeleteOtpCodesByIdentifierType(ctx, sqlc.DeleteOtpCodesByIdentifierTypeParams{
		Identifier: rec.Identifier,
		Type:       rec.Type.String(),
	}); err != nil {
		return s.mapError(err)
	}

	if err := wtx.CreateOtpCode(ctx, sqlc.CreateOtpCodeParams{
		ID:         rec.ID,
		Identifier: rec.Identifier,
		Code:       rec.Code,
		Type:       rec.Type.String(),
		Attempts:   int32(rec.Attempts),
		Resends:    int32(rec.Resends),
		ExpiresAt:  pgtype.Timestamptz{Valid: true, Time: rec.ExpiresAt},
	}); err != nil {
		return s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
