package usecase

import (
	"context"
	"strconv"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
)

type ConsumeOtpIssuedInput struct {
	Identifier string `validate:"required,max=255"`
	Type       string `validate:"required,oneof=email phone"`
	Code       string `validate:"required,len=6,numeric"`
	ExpiresIn  int64  `validate:"required,gt=0"`
}

func (s *Usecase) ConsumeOtpIssued(ctx context.Context, in ConsumeOtpIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOtpIssued")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	minutes := in.ExpiresIn / 60
	if minutes < 1 {
		minutes = 1
	}

	data := s.baseEmailTemplateData()
	data["code"] = in.Code
	data["expires_in_minutes"] = strconv.FormatInt(minutes, 10)

	if in.Type == "phone" {
		body, err := s.renderTemplate("otp_sms", otpSMSBody, data)
		if err != nil {
			return err
		}

		return s.deliverSMS(ctx, in.Identifier, body)
	}

	body, err := s.renderTemplate("otp_email", otpEmailBody, data)
	if err != nil {
		return err
	}

	return s.deliverEmail(ctx, in.Identifier, otpEmailSubject, body)
}
