package db

import (
	"context"
)

// IncrementOtpAttempts bumps the failed-attempt counter atomically in the
// database and returns the new value, so concurrent wrong guesses never lose
// an increment.
func (s *DB) IncrementOtpAttempts(ctx context.Context, id int64) (attempts int, err error) {
	ctx, span := s.startSpan(ctx, "IncrementOtpAttempts")
	defer func() { s.endSpan(span, err) }()

	n, err := s.query.IncrementOtpCodeAttempts(ctx, id)
	if err != nil {
		return 0, s.mapError(err)
	}

	return int(n), nil
}

func (s *DB) DeleteOtp(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteOtp")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.query.DeleteOtpCodeByID(ctx, id))
	return err
}
