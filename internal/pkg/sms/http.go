package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrProviderRejected indicates the gateway returned a non-2xx status.
var ErrProviderRejected = errors.New("sms: provider rejected message")

// HTTPConfig holds settings for the HTTP gateway sender.
type HTTPConfig struct {
	// Endpoint is the gateway URL messages are POSTed to.
	Endpoint string
	// APIKey is sent as a bearer token.
	APIKey string
	// Sender is the originating number or alphanumeric ID.
	Sender string
	// Timeout bounds each delivery request.
	Timeout time.Duration
}

// HTTPSender delivers messages through a JSON-over-HTTP SMS gateway.
type HTTPSender struct {
	cfg    HTTPConfig
	client *http.Client
}

// NewHTTP returns an HTTP gateway sender.
func NewHTTP(cfg HTTPConfig) (*HTTPSender, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("sms: endpoint is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &HTTPSender{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Send posts the message to the gateway.
func (s *HTTPSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(map[string]string{
		"from": s.cfg.Sender,
		"to":   msg.To,
		"body": msg.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrProviderRejected, resp.StatusCode)
	}

	return nil
}

// Close implements io.Closer.
func (s *HTTPSender) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
