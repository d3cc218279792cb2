package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/validator"
	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
)

type fakeStore struct {
	records []entity.OtpRecord
	failAll bool
}

var errStoreDown = errors.New("store unavailable")

func (f *fakeStore) GetValidOtp(_ context.Context, identifier string, t entity.OtpType, now time.Time) (*entity.OtpRecord, error) {
	if f.failAll {
		return nil, errStoreDown
	}

	for i := range f.records {
		r := f.records[i]
		if r.Identifier == identifier && r.Type == t && r.Valid(now) {
			return &r, nil
		}
	}

	return nil, goerror.ErrNotFound
}

func (f *fakeStore) ReplaceOtp(_ context.Context, rec entity.OtpRecord) error {
	if f.failAll {
		return errStoreDown
	}

	kept := f.records[:0]
	for _, r := range f.records {
		if r.Identifier != rec.Identifier || r.Type != rec.Type {
			kept = append(kept, r)
		}
	}
	f.records = append(kept, rec)

	return nil
}

func (f *fakeStore) IncrementOtpAttempts(_ context.Context, id int64) (int, error) {
	if f.failAll {
		return 0, errStoreDown
	}

	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Attempts++
			return f.records[i].Attempts, nil
		}
	}

	return 0, goerror.ErrNotFound
}

func (f *fakeStore) DeleteOtp(_ context.Context, id int64) error {
	if f.failAll {
		return errStoreDown
	}

	kept := f.records[:0]
	for _, r := range f.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.records = kept

	return nil
}

func (f *fakeStore) countFor(identifier string, t entity.OtpType) int {
	n := 0
	for _, r := range f.records {
		if r.Identifier == identifier && r.Type == t {
			n++
		}
	}
	return n
}

type fakeMessenger struct {
	published []OtpIssuedEvent
	err       error
}

func (f *fakeMessenger) PublishOtpIssued(_ context.Context, msg OtpIssuedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type scriptedCode struct {
	codes []string
	next  int
}

func (f *scriptedCode) Generate() (string, error) {
	if f.next >= len(f.codes) {
		return "", errors.New("out of scripted codes")
	}
	c := f.codes[f.next]
	f.next++
	return c, nil
}

type seqID struct{ last int64 }

func (s *seqID) Generate() int64 {
	s.last++
	return s.last
}

func newTestUsecase(t *testing.T, store *fakeStore, msgr *fakeMessenger, clk *fakeClock, codes ...string) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return New(Dependency{
		RepoDB:        store,
		RepoMessaging: msgr,
		Validator:     v,
		UID:           &seqID{},
		Code:          &scriptedCode{codes: codes},
		Clock:         clk,
		Instrument:    instrument.NewNoop(),
	})
}

func TestSendOtpIssuesSingleRecord(t *testing.T) {
	store := &fakeStore{}
	msgr := &fakeMessenger{}
	clk := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	uc := newTestUsecase(t, store, msgr, clk, "123456")

	out, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "user@example.com", Type: "email"})
	if err != nil {
		t.Fatalf("send otp: %v", err)
	}

	if out.AttemptsRemaining != entity.MaxAttempts {
		t.Fatalf("attempts remaining = %d, want %d", out.AttemptsRemaining, entity.MaxAttempts)
	}
	if out.ResendRemaining != entity.MaxResends {
		t.Fatalf("resend remaining = %d, want %d", out.ResendRemaining, entity.MaxResends)
	}

	if got := store.countFor("user@example.com", entity.OtpTypeEmail); got != 1 {
		t.Fatalf("record count = %d, want 1", got)
	}

	rec := store.records[0]
	if rec.Code != "123456" || rec.Attempts != 0 || rec.Resends != 0 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if want := clk.now.Add(entity.CodeExpiry); !rec.ExpiresAt.Equal(want) {
		t.Fatalf("expires at = %v, want %v", rec.ExpiresAt, want)
	}

	if len(msgr.published) != 1 || msgr.published[0].Code != "123456" {
		t.Fatalf("unexpected publishes: %+v", msgr.published)
	}
}

func TestSendOtpLowercasesEmail(t *testing.T) {
	store := &fakeStore{}
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk, "111111")

	if _, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "User@Example.COM", Type: "email"}); err != nil {
		t.Fatalf("send otp: %v", err)
	}

	if store.records[0].Identifier != "user@example.com" {
		t.Fatalf("identifier = %q, want lower cased", store.records[0].Identifier)
	}
}

func TestSendOtpResendSupersedes(t *testing.T) {
	store := &fakeStore{}
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk, "111111", "222222")

	if _, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "9876543210", Type: "phone"}); err != nil {
		t.Fatalf("first send: %v", err)
	}

	out, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "9876543210", Type: "phone"})
	if err != nil {
		t.Fatalf("second send: %v", err)
	}

	if got := store.countFor("9876543210", entity.OtpTypePhone); got != 1 {
		t.Fatalf("record count = %d, want 1", got)
	}
	if store.records[0].Code != "222222" || store.records[0].Resends != 1 {
		t.Fatalf("unexpected record after resend: %+v", store.records[0])
	}
	if out.ResendRemaining != entity.MaxResends-1 {
		t.Fatalf("resend remaining = %d, want %d", out.ResendRemaining, entity.MaxResends-1)
	}
}

func TestSendOtpResendQuotaExceeded(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	store := &fakeStore{records: []entity.OtpRecord{{
		ID:         7,
		Identifier: "9876543210",
		Code:       "555555",
		Type:       entity.OtpTypePhone,
		Resends:    entity.MaxResends,
		ExpiresAt:  clk.now.Add(time.Minute),
	}}}
	msgr := &fakeMessenger{}
	uc := newTestUsecase(t, store, msgr, clk, "666666")

	_, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "9876543210", Type: "phone"})
	if !errors.Is(err, entity.ErrResendQuotaExceeded) {
		t.Fatalf("err = %v, want resend quota exceeded", err)
	}

	if store.records[0].Code != "555555" {
		t.Fatal("store mutated on quota breach")
	}
	if len(msgr.published) != 0 {
		t.Fatal("published on quota breach")
	}
}

func TestSendOtpNotifierFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{}
	msgr := &fakeMessenger{err: errors.New("broker down")}
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, msgr, clk, "123456")

	out, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "user@example.com", Type: "email"})
	if err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if out == nil || len(store.records) != 1 {
		t.Fatal("record should survive delivery failure")
	}
}

func TestSendOtpValidation(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, &fakeStore{}, &fakeMessenger{}, clk)

	cases := []SendOtpInput{
		{Identifier: "", Type: "email"},
		{Identifier: "user@example.com", Type: "pigeon"},
		{Identifier: "not-an-email", Type: "email"},
		{Identifier: "12345", Type: "phone"},
		{Identifier: "98765abcde", Type: "phone"},
	}

	for _, in := range cases {
		_, err := uc.SendOtp(t.Context(), in)

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
			t.Fatalf("input %+v: err = %v, want validation error", in, err)
		}
	}
}

func TestVerifyOtpLifecycle(t *testing.T) {
	store := &fakeStore{}
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk, "123456")

	if _, err := uc.SendOtp(t.Context(), SendOtpInput{Identifier: "user@example.com", Type: "email"}); err != nil {
		t.Fatalf("send otp: %v", err)
	}

	// Wrong guess burns an attempt but keeps the record.
	err := uc.VerifyOtp(t.Context(), VerifyOtpInput{Identifier: "user@example.com", Type: "email", Code: "000000"})
	if !errors.Is(err, entity.ErrInvalidCode) {
		t.Fatalf("err = %v, want invalid code", err)
	}

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("err = %v, want goerror", err)
	}
	if got := gerr.Fields()["attempts_remaining"]; got != "9" {
		t.Fatalf("attempts_remaining = %q, want 9", got)
	}
	if store.records[0].Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", store.records[0].Attempts)
	}

	// Correct code consumes the record.
	if err := uc.VerifyOtp(t.Context(), VerifyOtpInput{Identifier: "user@example.com", Type: "email", Code: "123456"}); err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if len(store.records) != 0 {
		t.Fatal("record not consumed on success")
	}

	// The same code cannot verify twice.
	err = uc.VerifyOtp(t.Context(), VerifyOtpInput{Identifier: "user@example.com", Type: "email", Code: "123456"})
	if !errors.Is(err, entity.ErrOtpNotFoundOrExpired) {
		t.Fatalf("err = %v, want not found or expired", err)
	}
}

func TestVerifyOtpExpired(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	store := &fakeStore{records: []entity.OtpRecord{{
		ID:         1,
		Identifier: "user@example.com",
		Code:       "123456",
		Type:       entity.OtpTypeEmail,
		ExpiresAt:  clk.now.Add(-time.Second),
	}}}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk)

	err := uc.VerifyOtp(t.Context(), VerifyOtpInput{Identifier: "user@example.com", Type: "email", Code: "123456"})
	if !errors.Is(err, entity.ErrOtpNotFoundOrExpired) {
		t.Fatalf("err = %v, want not found or expired", err)
	}
}

func TestVerifyOtpAttemptsExhausted(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	store := &fakeStore{records: []entity.OtpRecord{{
		ID:         1,
		Identifier: "user@example.com",
		Code:       "123456",
		Type:       entity.OtpTypeEmail,
		Attempts:   entity.MaxAttempts,
		ExpiresAt:  clk.now.Add(time.Minute),
	}}}
	uc := newTestUsecase(t, store, &fakeMessenger{}, clk)

	err := uc.VerifyOtp(t.Context(), VerifyOtpInput{Identifier: "user@example.com", Type: "email", Code: "123456"})
	if !errors.Is(err, entity.ErrAttemptsExhausted) {
		t.Fatalf("err = %v, want attempts exhausted", err)
	}

	if store.records[0].Attempts != entity.MaxAttempts {
		t.Fatalf("attempts = %d, exhausted record must not mutate", store.records[0].Attempts)
	}
}

func TestVerifyOtpStoreFailure(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	uc := newTestUsecase(t, &fakeStore{failAll: true}, &fakeMessenger{}, clk)

	err := uc.VerifyOtp(t.Context(), VerifyOtpInput{Identifier: "user@example.com", Type: "email", Code: "123456"})

	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeServer {
		t.Fatalf("err = %v, want server error", err)
	}
}
