package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/unifydesk/internal/notification/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/mail"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sms"
)

// deliverEmail records a delivery log, sends the message, then marks the
// log sent or failed. Logging failures never mask the send result.
func (s *Usecase) deliverEmail(ctx context.Context, recipient, subject, htmlBody string) error {
	logID := s.uid.Generate()

	dl := entity.CreateDeliveryLog{
		ID:        logID,
		Channel:   entity.ChannelEmail,
		Recipient: recipient,
		Subject:   subject,
		Status:    entity.DeliveryStatusQueued,
	}
	if err := s.repoDB.CreateDeliveryLog(ctx, dl); err != nil {
		slog.ErrorContext(ctx, "failed to repo create email delivery log", "recipient", recipient, "error", err)
		return err
	}

	sendErr := s.repoMail.Send(ctx, mail.Message{
		To:       []string{recipient},
		Subject:  subject,
		HTMLBody: htmlBody,
	})

	s.finishDeliveryLog(ctx, logID, sendErr)

	return sendErr
}

func (s *Usecase) deliverSMS(ctx context.Context, recipient, body string) error {
	logID := s.uid.Generate()

	dl := entity.CreateDeliveryLog{
		ID:        logID,
		Channel:   entity.ChannelSMS,
		Recipient: recipient,
		Status:    entity.DeliveryStatusQueued,
	}
	if err := s.repoDB.CreateDeliveryLog(ctx, dl); err != nil {
		slog.ErrorContext(ctx, "failed to repo create sms delivery log", "recipient", recipient, "error", err)
		return err
	}

	sendErr := s.repoSMS.Send(ctx, sms.Message{To: recipient, Body: body})

	s.finishDeliveryLog(ctx, logID, sendErr)

	return sendErr
}

func (s *Usecase) finishDeliveryLog(ctx context.Context, logID int64, sendErr error) {
	up := entity.UpdateDeliveryLog{
		ID:               logID,
		Status:           entity.DeliveryStatusSent,
		ProviderResponse: map[string]string{},
	}
	if sendErr != nil {
		up.Status = entity.DeliveryStatusFailed
		up.ProviderResponse = map[string]string{"error": sendErr.Error()}
	}

	if err := s.repoDB.UpdateDeliveryLogStatus(ctx, up); err != nil {
		slog.ErrorContext(ctx, "failed to repo update delivery log status",
			"log_id", logID, "status", up.Status.String(), "error", err)
	}
}
