package sms

import (
	"context"
	"io"
)

// Message represents an SMS payload.
type Message struct {
	// To is the destination phone number (digits only).
	To string
	// Body is the message text.
	Body string
}

// Sender abstracts an SMS provider.
type Sender interface {
	io.Closer
	// Send dispatches the given message using the underlying provider.
	Send(ctx context.Context, msg Message) error
}
