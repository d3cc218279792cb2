package sms

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the application log instead of a gateway.
//
// Useful for local development and demo environments where no SMS provider is
// configured.
type LogSender struct{}

// NewLog returns a log-only sender.
func NewLog() *LogSender {
	return &LogSender{}
}

// Send logs the message.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "sms dispatched to log", "to", msg.To, "body", msg.Body)
	return nil
}

// Close implements io.Closer.
func (s *LogSender) Close() error {
	return nil
}
