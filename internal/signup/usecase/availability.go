package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
)

type CheckUsernameInput struct {
	Username string `validate:"required,min=3,max=20,alphanum"`
}

type CheckEmailInput struct {
	Email string `validate:"required,email"`
}

type CheckPhoneInput struct {
	Phone string `validate:"required,len=10,numeric"`
}

type AvailabilityOutput struct {
	Available bool
}

func (s *Usecase) CheckUsername(ctx context.Context, in CheckUsernameInput) (*AvailabilityOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckUsername")
	defer span.End()

	in.Username = strings.TrimSpace(strings.ToLower(in.Username))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	exists, err := s.repoDB.ExistsUserByUsername(ctx, in.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check username", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AvailabilityOutput{Available: !exists}, nil
}

func (s *Usecase) CheckEmail(ctx context.Context, in CheckEmailInput) (*AvailabilityOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckEmail")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	exists, err := s.repoDB.ExistsUserByEmail(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AvailabilityOutput{Available: !exists}, nil
}

func (s *Usecase) CheckPhone(ctx context.Context, in CheckPhoneInput) (*AvailabilityOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckPhone")
	defer span.End()

	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	exists, err := s.repoDB.ExistsUserByPhone(ctx, in.Phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check phone", "phone", in.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AvailabilityOutput{Available: !exists}, nil
}
