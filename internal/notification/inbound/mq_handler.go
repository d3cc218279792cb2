package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/unifydesk/internal/notification/usecase"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
	"github.com/shandysiswandi/unifydesk/internal/pkg/uid"
	"github.com/shandysiswandi/unifydesk/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OtpIssuedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OtpIssuedNotification")
	defer span.End()

	// The body carries the plaintext code, so it never goes to the log.
	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp issued notification", "msg_id", msg.ID(), "topic", msg.Topic())

	var payload event.OtpIssuedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp issued notification", "msg_id", msg.ID(), "error", err)
		return nil
	}

	if err := h.uc.ConsumeOtpIssued(ctx, usecase.ConsumeOtpIssuedInput{
		Identifier: payload.Identifier,
		Type:       payload.Type,
		Code:       payload.Code,
		ExpiresIn:  payload.ExpiresIn,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp issued", "msg_id", msg.ID(), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) UserRegisteredNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "UserRegisteredNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: user registered notification", "msg_body", string(body))

	var payload event.UserRegisteredMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user registered notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeUserRegistered(ctx, usecase.ConsumeUserRegisteredInput{
		UserID:    payload.UserID,
		Username:  payload.Username,
		Email:     payload.Email,
		FirstName: payload.FirstName,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume user registered", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
