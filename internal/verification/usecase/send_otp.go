package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
)

type SendOtpInput struct {
	Identifier string `validate:"required,max=255"`
	Type       string `validate:"required,oneof=email phone"`
}

type SendOtpOutput struct {
	AttemptsRemaining int
	ResendRemaining   int
}

type identifierEmail struct {
	Identifier string `validate:"required,email"`
}

type identifierPhone struct {
	Identifier string `validate:"required,len=10,numeric"`
}

func (s *Usecase) SendOtp(ctx context.Context, in SendOtpInput) (*SendOtpOutput, error) {
	ctx, span := s.startSpan(ctx, "SendOtp")
	defer span.End()

	in.Identifier = strings.TrimSpace(in.Identifier)
	in.Type = strings.TrimSpace(strings.ToLower(in.Type))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	otpType := entity.OtpTypeFromString(in.Type)
	identifier, err := s.normalizeIdentifier(in.Identifier, otpType)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	resends := 0
	existing, err := s.repoDB.GetValidOtp(ctx, identifier, otpType, now)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get valid otp", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}
	if existing != nil {
		if existing.Resends >= entity.MaxResends {
			return nil, goerror.NewBusinessWrap(entity.ErrResendQuotaExceeded,
				"Maximum resend limit reached. Please try again later.", goerror.CodeTooManyRequest)
		}
		resends = existing.Resends + 1
	}

	code, err := s.code.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	rec := entity.OtpRecord{
		ID:         s.uid.Generate(),
		Identifier: identifier,
		Code:       code,
		Type:       otpType,
		Attempts:   0,
		Resends:    resends,
		ExpiresAt:  now.Add(entity.CodeExpiry),
	}

	if err := s.repoDB.ReplaceOtp(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "failed to repo replace otp", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOtpIssued(ctx, OtpIssuedEvent{
		Identifier: identifier,
		Type:       otpType,
		Code:       code,
		ExpiresIn:  entity.CodeExpiry,
	}); err != nil {
		// Delivery is best effort. The record stays valid so the user can
		// still verify a code that arrives late or through another channel.
		slog.ErrorContext(ctx, "failed to publish otp issued",
			"identifier", identifier, "error", errors.Join(entity.ErrNotifierFailure, err))
	}

	return &SendOtpOutput{
		AttemptsRemaining: entity.MaxAttempts,
		ResendRemaining:   entity.MaxResends - resends,
	}, nil
}

// normalizeIdentifier folds emails to lower case and keeps phone numbers as
// exact digit strings, then checks the shape of each.
func (s *Usecase) normalizeIdentifier(identifier string, t entity.OtpType) (string, error) {
	switch t {
	case entity.OtpTypeEmail:
		identifier = strings.ToLower(identifier)
		if err := s.validator.Validate(identifierEmail{Identifier: identifier}); err != nil {
			return "", goerror.NewInvalidInput(err)
		}
	case entity.OtpTypePhone:
		if err := s.validator.Validate(identifierPhone{Identifier: identifier}); err != nil {
			return "", goerror.NewInvalidInput(err)
		}
	default:
		return "", goerror.NewInvalidInput(nil, "type", "must be one of email or phone")
	}

	return identifier, nil
}
