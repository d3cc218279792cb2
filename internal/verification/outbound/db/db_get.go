package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sqlc"
	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
)

func (s *DB) GetValidOtp(ctx context.Context, identifier string, t entity.OtpType, now time.Time) (rec *entity.OtpRecord, err error) {
	ctx, span := s.startSpan(ctx, "GetValidOtp")
	defer func() { s.endSpan(span, err) }()

	row, err := s.query.GetValidOtpCode(ctx, sqlc.GetValidOtpCodeParams{
		Identifier: identifier,
		Type:       t.String(),
		ExpiresAt:  pgtype.Timestamptz{Valid: true, Time: now},
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return toOtpRecord(row), nil
}
