package usecase

import (
	"context"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
)

type ConsumeUserRegisteredInput struct {
	UserID    int64  `validate:"required"`
	Username  string `validate:"required"`
	Email     string `validate:"required,email"`
	FirstName string `validate:"required"`
}

func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	data := s.baseEmailTemplateData()
	data["first_name"] = in.FirstName
	data["username"] = in.Username

	body, err := s.renderTemplate("welcome_email", welcomeEmailBody, data)
	if err != nil {
		return err
	}

	return s.deliverEmail(ctx, in.Email, welcomeEmailSubject, body)
}
