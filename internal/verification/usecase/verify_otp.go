package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
)

type VerifyOtpInput struct {
	Identifier string `validate:"required,max=255"`
	Type       string `validate:"required,oneof=email phone"`
	Code       string `validate:"required,len=6,numeric"`
}

func (s *Usecase) VerifyOtp(ctx context.Context, in VerifyOtpInput) error {
	ctx, span := s.startSpan(ctx, "VerifyOtp")
	defer span.End()

	in.Identifier = strings.TrimSpace(in.Identifier)
	in.Type = strings.TrimSpace(strings.ToLower(in.Type))
	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	otpType := entity.OtpTypeFromString(in.Type)
	identifier, err := s.normalizeIdentifier(in.Identifier, otpType)
	if err != nil {
		return err
	}

	rec, err := s.repoDB.GetValidOtp(ctx, identifier, otpType, s.clock.Now())
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusinessWrap(entity.ErrOtpNotFoundOrExpired,
			"Invalid or expired OTP", goerror.CodeInvalidFormat)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get valid otp", "identifier", identifier, "error", err)
		return goerror.NewServer(err)
	}

	if rec.Exhausted() {
		return goerror.NewBusinessWrap(entity.ErrAttemptsExhausted,
			"Maximum attempts exceeded", goerror.CodeTooManyRequest)
	}

	if rec.Code != in.Code {
		attempts, err := s.repoDB.IncrementOtpAttempts(ctx, rec.ID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo increment otp attempts", "otp_id", rec.ID, "error", err)
			return goerror.NewServer(err)
		}

		return goerror.NewBusinessWrap(entity.ErrInvalidCode, "Invalid OTP", goerror.CodeInvalidFormat,
			"attempts_remaining", strconv.Itoa(entity.MaxAttempts-attempts))
	}

	// Single use. The record is consumed so the same code can never verify twice.
	if err := s.repoDB.DeleteOtp(ctx, rec.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete otp", "otp_id", rec.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
