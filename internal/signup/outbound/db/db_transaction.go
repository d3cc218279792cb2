package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sqlc"
	"github.com/shandysiswandi/unifydesk/internal/signup/entity"
)

// NewSignup inserts the user and its first session in a single transaction,
// so a failed session insert never leaves an account without a way to log in.
func (s *DB) NewSignup(ctx context.Context, user entity.NewUser, sess entity.Session, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "NewSignup")
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

	wtx := s.query.WithTx(tx)

	if err := wtx.CreateUser(ctx, sqlc.CreateUserParams{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Phone:         user.Phone,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Gender:        user.Gender,
		DateOfBirth:   user.DateOfBirth,
		Nationality:   user.Nationality,
		State:         user.State,
		City:          user.City,
		Address:       user.Address,
		Password:      hash,
		EmailVerified: user.EmailVerified,
		PhoneVerified: user.PhoneVerified,
	}); err != nil {
		return s.mapError(err)
	}

	if err := wtx.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:        sess.ID,
		SessionID: sess.SessionID,
		UserID:    sess.UserID,
		ExpiresAt: pgtype.Timestamptz{Valid: true, Time: sess.ExpiresAt},
	}); err != nil {
		return s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
