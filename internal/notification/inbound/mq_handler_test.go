package inbound

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/notification/usecase"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/messaging"
)

type fakeUsecase struct {
	otpIssued      []usecase.ConsumeOtpIssuedInput
	userRegistered []usecase.ConsumeUserRegisteredInput
}

func (f *fakeUsecase) ConsumeOtpIssued(_ context.Context, in usecase.ConsumeOtpIssuedInput) error {
	f.otpIssued = append(f.otpIssued, in)
	return nil
}

func (f *fakeUsecase) ConsumeUserRegistered(_ context.Context, in usecase.ConsumeUserRegisteredInput) error {
	f.userRegistered = append(f.userRegistered, in)
	return nil
}

type fixedUUID struct{}

func (fixedUUID) Generate() string { return "11111111-2222-3333-4444-555555555555" }

type fakeMessage struct {
	body  []byte
	topic string
}

func (m *fakeMessage) Body() []byte { return m.body }

func (m *fakeMessage) Key() []byte { return nil }

func (m *fakeMessage) Headers() []messaging.Header { return nil }

func (m *fakeMessage) Attributes() map[string]string { return nil }

func (m *fakeMessage) ID() string { return "msg-1" }

func (m *fakeMessage) Topic() string { return m.topic }

func (m *fakeMessage) Subject() string { return m.topic }

func (m *fakeMessage) Timestamp() time.Time { return time.Time{} }

func (m *fakeMessage) Ack(_ context.Context) error { return nil }

func TestOtpIssuedNotificationDoesNotLogCode(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	fake := &fakeUsecase{}
	h := &MQHandler{uc: fake, uuid: fixedUUID{}, ins: instrument.NewNoop()}

	msg := &fakeMessage{
		body:  []byte(`{"identifier":"user@example.com","type":"email","code":"482913","expires_in_seconds":300}`),
		topic: "otp_issued",
	}

	if err := h.OtpIssuedNotification(t.Context(), msg); err != nil {
		t.Fatalf("OtpIssuedNotification() error = %v", err)
	}

	if len(fake.otpIssued) != 1 {
		t.Fatalf("ConsumeOtpIssued calls = %d, want 1", len(fake.otpIssued))
	}
	if fake.otpIssued[0].Code != "482913" {
		t.Errorf("consumed code = %q, want %q", fake.otpIssued[0].Code, "482913")
	}

	if strings.Contains(buf.String(), "482913") {
		t.Errorf("log output leaks the code: %s", buf.String())
	}
}

func TestOtpIssuedNotificationBadPayload(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	fake := &fakeUsecase{}
	h := &MQHandler{uc: fake, uuid: fixedUUID{}, ins: instrument.NewNoop()}

	msg := &fakeMessage{body: []byte(`{secret-761204`), topic: "otp_issued"}

	if err := h.OtpIssuedNotification(t.Context(), msg); err != nil {
		t.Fatalf("OtpIssuedNotification() error = %v", err)
	}

	if len(fake.otpIssued) != 0 {
		t.Fatalf("ConsumeOtpIssued calls = %d, want 0", len(fake.otpIssued))
	}
	if strings.Contains(buf.String(), "761204") {
		t.Errorf("log output leaks the body: %s", buf.String())
	}
}
