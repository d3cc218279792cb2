package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/notification/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/mail"
	"github.com/shandysiswandi/unifydesk/internal/pkg/sms"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
)

type fakeLogStore struct {
	created []entity.CreateDeliveryLog
	updated []entity.UpdateDeliveryLog
	failAll bool
}

func (f *fakeLogStore) CreateDeliveryLog(_ context.Context, dl entity.CreateDeliveryLog) error {
	if f.failAll {
		return errors.New("store down")
	}
	f.created = append(f.created, dl)
	return nil
}

func (f *fakeLogStore) UpdateDeliveryLogStatus(_ context.Context, u entity.UpdateDeliveryLog) error {
	f.updated = append(f.updated, u)
	return nil
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeTexter struct {
	sent []sms.Message
	err  error
}

func (f *fakeTexter) Send(_ context.Context, msg sms.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct{ next int64 }

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

type fakeConfig struct{ values map[string]string }

func (f *fakeConfig) Close() error { return nil }
func (f *fakeConfig) GetString(key string) string { return f.values[key] }
func (f *fakeConfig) GetBool(string) bool { return false }
func (f *fakeConfig) GetBinary(string) []byte { return nil }
func (f *fakeConfig) GetArray(string) []string { return nil }
func (f *fakeConfig) GetMap(string) map[string]string { return nil }
func (f *fakeConfig) GetInt(string) int { return 0 }
func (f *fakeConfig) GetInt32(string) int32 { return 0 }
func (f *fakeConfig) GetInt64(string) int64 { return 0 }
func (f *fakeConfig) GetUint(string) uint { return 0 }
func (f *fakeConfig) GetUint16(string) uint16 { return 0 }
func (f *fakeConfig) GetUint32(string) uint32 { return 0 }
func (f *fakeConfig) GetUint64(string) uint64 { return 0 }
func (f *fakeConfig) GetFloat32(string) float32 { return 0 }
func (f *fakeConfig) GetFloat64(string) float64 { return 0 }
func (f *fakeConfig) GetSecond(string) time.Duration { return 0 }
func (f *fakeConfig) GetMinute(string) time.Duration { return 0 }
func (f *fakeConfig) GetHour(string) time.Duration { return 0 }
func (f *fakeConfig) GetDay(string) time.Duration { return 0 }

func newTestNotification(t *testing.T, store *fakeLogStore, mailer *fakeMailer, texter *fakeTexter) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return NewNotification(Dependency{
		RepoDB:   store,
		RepoMail: mailer,
		RepoSMS:  texter,
		Config: &fakeConfig{values: map[string]string{
			"app.name":                             "UnifyDesk",
			"modules.notification.support_email":   "support@unifydesk.io",
			"modules.notification.company_address": "Bengaluru, Karnataka 560001",
		}},
		UID:        &seqID{},
		Clock:      &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeOtpIssuedEmail(t *testing.T) {
	store := &fakeLogStore{}
	mailer := &fakeMailer{}
	texter := &fakeTexter{}
	uc := newTestNotification(t, store, mailer, texter)

	err := uc.ConsumeOtpIssued(t.Context(), ConsumeOtpIssuedInput{
		Identifier: "user@example.com",
		Type:       "email",
		Code:       "482913",
		ExpiresIn:  300,
	})
	if err != nil {
		t.Fatalf("ConsumeOtpIssued() error = %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To[0] != "user@example.com" {
		t.Errorf("recipient = %q", msg.To[0])
	}
	if msg.Subject != otpEmailSubject {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLBody, "482913") {
		t.Error("body does not contain the code")
	}
	if !strings.Contains(msg.HTMLBody, "5 minutes") {
		t.Error("body does not mention expiry in minutes")
	}
	if len(texter.sent) != 0 {
		t.Errorf("sent %d sms, want 0", len(texter.sent))
	}

	if len(store.created) != 1 || len(store.updated) != 1 {
		t.Fatalf("delivery logs created=%d updated=%d, want 1 and 1", len(store.created), len(store.updated))
	}
	if store.created[0].Channel != entity.ChannelEmail {
		t.Errorf("channel = %v", store.created[0].Channel)
	}
	if store.created[0].Status != entity.DeliveryStatusQueued {
		t.Errorf("initial status = %v", store.created[0].Status)
	}
	if store.updated[0].Status != entity.DeliveryStatusSent {
		t.Errorf("final status = %v", store.updated[0].Status)
	}
}

func TestConsumeOtpIssuedPhone(t *testing.T) {
	store := &fakeLogStore{}
	mailer := &fakeMailer{}
	texter := &fakeTexter{}
	uc := newTestNotification(t, store, mailer, texter)

	err := uc.ConsumeOtpIssued(t.Context(), ConsumeOtpIssuedInput{
		Identifier: "9876543210",
		Type:       "phone",
		Code:       "100345",
		ExpiresIn:  300,
	})
	if err != nil {
		t.Fatalf("ConsumeOtpIssued() error = %v", err)
	}

	if len(texter.sent) != 1 {
		t.Fatalf("sent %d sms, want 1", len(texter.sent))
	}
	if texter.sent[0].To != "9876543210" {
		t.Errorf("recipient = %q", texter.sent[0].To)
	}
	if !strings.Contains(texter.sent[0].Body, "100345") {
		t.Error("sms body does not contain the code")
	}
	if len(mailer.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(mailer.sent))
	}
	if store.created[0].Channel != entity.ChannelSMS {
		t.Errorf("channel = %v", store.created[0].Channel)
	}
}

func TestConsumeOtpIssuedProviderFailure(t *testing.T) {
	store := &fakeLogStore{}
	mailer := &fakeMailer{err: errors.New("smtp refused")}
	uc := newTestNotification(t, store, mailer, &fakeTexter{})

	err := uc.ConsumeOtpIssued(t.Context(), ConsumeOtpIssuedInput{
		Identifier: "user@example.com",
		Type:       "email",
		Code:       "482913",
		ExpiresIn:  300,
	})
	if err == nil {
		t.Fatal("expected delivery error")
	}

	if len(store.updated) != 1 {
		t.Fatalf("updated %d logs, want 1", len(store.updated))
	}
	if store.updated[0].Status != entity.DeliveryStatusFailed {
		t.Errorf("final status = %v", store.updated[0].Status)
	}
	if store.updated[0].ProviderResponse["error"] != "smtp refused" {
		t.Errorf("provider response = %v", store.updated[0].ProviderResponse)
	}
}

func TestConsumeOtpIssuedValidation(t *testing.T) {
	uc := newTestNotification(t, &fakeLogStore{}, &fakeMailer{}, &fakeTexter{})

	inputs := []ConsumeOtpIssuedInput{
		{Type: "email", Code: "482913", ExpiresIn: 300},
		{Identifier: "a@b.com", Type: "push", Code: "482913", ExpiresIn: 300},
		{Identifier: "a@b.com", Type: "email", Code: "48", ExpiresIn: 300},
		{Identifier: "a@b.com", Type: "email", Code: "482913"},
	}
	for i, in := range inputs {
		if err := uc.ConsumeOtpIssued(t.Context(), in); err == nil {
			t.Errorf("input %d: expected validation error", i)
		}
	}
}

func TestConsumeUserRegistered(t *testing.T) {
	store := &fakeLogStore{}
	mailer := &fakeMailer{}
	uc := newTestNotification(t, store, mailer, &fakeTexter{})

	err := uc.ConsumeUserRegistered(t.Context(), ConsumeUserRegisteredInput{
		UserID:    7,
		Username:  "priya01",
		Email:     "priya@example.com",
		FirstName: "Priya",
	})
	if err != nil {
		t.Fatalf("ConsumeUserRegistered() error = %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mailer.sent))
	}
	body := mailer.sent[0].HTMLBody
	if !strings.Contains(body, "Priya") || !strings.Contains(body, "priya01") {
		t.Error("welcome body missing personalization")
	}
	if !strings.Contains(body, "UnifyDesk") {
		t.Error("welcome body missing company name")
	}
	if store.updated[0].Status != entity.DeliveryStatusSent {
		t.Errorf("final status = %v", store.updated[0].Status)
	}
}
