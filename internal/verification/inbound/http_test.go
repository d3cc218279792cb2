package inbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"github.com/shandysiswandi/unifydesk/internal/pkg/router"
	"github.com/shandysiswandi/unifydesk/internal/verification/usecase"
)

type fakeUsecase struct {
	sendCalls   int
	verifyCalls int
}

func (f *fakeUsecase) SendOtp(_ context.Context, _ usecase.SendOtpInput) (*usecase.SendOtpOutput, error) {
	f.sendCalls++
	return &usecase.SendOtpOutput{AttemptsRemaining: 10, ResendRemaining: 5}, nil
}

func (f *fakeUsecase) VerifyOtp(_ context.Context, _ usecase.VerifyOtpInput) error {
	f.verifyCalls++
	return nil
}

func throttleAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
}

func TestThrottleGuardsIssueOnly(t *testing.T) {
	r := router.NewRouter(router.Config{Instrument: instrument.NewNoop()})
	fake := &fakeUsecase{}

	RegisterHTTPEndpoint(r, fake, throttleAll)

	send := httptest.NewRequest(http.MethodPost, "/api/send-otp",
		strings.NewReader(`{"identifier":"user@example.com","type":"email"}`))
	sendRec := httptest.NewRecorder()
	r.ServeHTTP(sendRec, send)

	if sendRec.Code != http.StatusTooManyRequests {
		t.Fatalf("send-otp status = %d, want %d", sendRec.Code, http.StatusTooManyRequests)
	}
	if fake.sendCalls != 0 {
		t.Fatalf("send usecase called %d times behind an exhausted window, want 0", fake.sendCalls)
	}

	verify := httptest.NewRequest(http.MethodPost, "/api/verify-otp",
		strings.NewReader(`{"identifier":"user@example.com","type":"email","code":"123456"}`))
	verifyRec := httptest.NewRecorder()
	r.ServeHTTP(verifyRec, verify)

	if verifyRec.Code != http.StatusOK {
		t.Fatalf("verify-otp status = %d, want %d", verifyRec.Code, http.StatusOK)
	}
	if fake.verifyCalls != 1 {
		t.Fatalf("verify usecase called %d times, want 1", fake.verifyCalls)
	}
}
