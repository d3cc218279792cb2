package db

import (
	"context"
)

func (s *DB) ExistsUserByUsername(ctx context.Context, username string) (exists bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsUserByUsername")
	defer func() { s.endSpan(span, err) }()

	n, err := s.query.CountUsersByUsername(ctx, username)
	if err != nil {
		return false, s.mapError(err)
	}

	return n > 0, nil
}

func (s *DB) ExistsUserByEmail(ctx context.Context, email string) (exists bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsUserByEmail")
	defer func() { s.endSpan(span, err) }()

	n, err := s.query.CountUsersByEmail(ctx, email)
	if err != nil {
		return false, s.mapError(err)
	}

	return n > 0, nil
}

func (s *DB) ExistsUserByPhone(ctx context.Context, phone string) (exists bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsUserByPhone")
	defer func() { s.endSpan(span, err) }()

	n, err := s.query.CountUsersByPhone(ctx, phone)
	if err != nil {
		return false, s.mapError(err)
	}

	return n > 0, nil
}
