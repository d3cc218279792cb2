package widget

import "testing"

func fill(w *Widget, code string) bool {
	submit := false
	for i := 0; i < len(code); i++ {
		if w.SetDigit(i, code[i]) {
			submit = true
		}
	}
	return submit
}

func TestAutoSubmitOnFullFill(t *testing.T) {
	w := New()

	for i, d := range []byte("12345") {
		if w.SetDigit(i, d) {
			t.Fatalf("submit fired early at cell %d", i)
		}
		if w.Focus() != i+1 {
			t.Fatalf("focus = %d after cell %d, want %d", w.Focus(), i, i+1)
		}
	}

	if !w.SetDigit(5, '6') {
		t.Fatal("submit did not fire on the sixth digit")
	}
	if w.State() != StateVerifying {
		t.Fatalf("state = %v, want verifying", w.State())
	}
	if w.Code() != "123456" {
		t.Fatalf("code = %q, want 123456", w.Code())
	}
}

func TestSubmitFiresOncePerFill(t *testing.T) {
	w := New()
	fill(w, "123456")

	// Input is frozen while verifying; re-typing must not re-submit.
	if w.SetDigit(5, '9') {
		t.Fatal("submit fired while verifying")
	}
	if w.Code() != "123456" {
		t.Fatalf("code mutated while verifying: %q", w.Code())
	}
}

func TestWrongCodeClearsCells(t *testing.T) {
	w := New()
	fill(w, "123456")

	w.VerifyResult(false, 9)

	if w.State() != StateRejected {
		t.Fatalf("state = %v, want rejected", w.State())
	}
	if w.Code() != "" {
		t.Fatalf("cells not cleared: %q", w.Code())
	}
	if w.Focus() != 0 {
		t.Fatalf("focus = %d, want 0", w.Focus())
	}
	if w.AttemptsRemaining() != 9 {
		t.Fatalf("attempts remaining = %d, want 9", w.AttemptsRemaining())
	}

	// A rejected widget accepts a new fill and submits again.
	if !fill(w, "654321") {
		t.Fatal("submit did not fire after rejection")
	}
}

func TestExhaustedIsTerminal(t *testing.T) {
	w := New()
	fill(w, "123456")

	w.VerifyResult(false, 0)

	if w.State() != StateExhausted {
		t.Fatalf("state = %v, want exhausted", w.State())
	}
	if w.SetDigit(0, '1') {
		t.Fatal("exhausted widget accepted input")
	}
	if w.Resend() {
		t.Fatal("exhausted widget allowed resend")
	}
}

func TestVerifiedIsTerminal(t *testing.T) {
	w := New()
	fill(w, "123456")

	w.VerifyResult(true, 10)

	if w.State() != StateVerified {
		t.Fatalf("state = %v, want verified", w.State())
	}
	if w.SetDigit(0, '1') {
		t.Fatal("verified widget accepted input")
	}
}

func TestBackspace(t *testing.T) {
	w := New()
	w.SetDigit(0, '1')
	w.SetDigit(1, '2')

	// Backspace on an empty cell moves focus back one cell.
	w.ClearDigit(2)
	if w.Focus() != 1 {
		t.Fatalf("focus = %d, want 1", w.Focus())
	}

	// Clearing a filled cell empties it in place.
	w.ClearDigit(1)
	if w.Focus() != 1 || w.Code() != "1" {
		t.Fatalf("focus = %d code = %q after clearing cell 1", w.Focus(), w.Code())
	}

	// Backspace on the now-empty cell moves focus back.
	w.ClearDigit(1)
	if w.Focus() != 0 {
		t.Fatalf("focus = %d, want 0", w.Focus())
	}
}

func TestResendCooldown(t *testing.T) {
	w := New()

	if !w.Resend() {
		t.Fatal("first resend should be allowed")
	}
	if w.Resend() {
		t.Fatal("overlapping resend allowed while one is in flight")
	}

	w.ResendResult(true, 10, 4)

	if w.ResendRemaining() != 4 {
		t.Fatalf("resend remaining = %d, want 4", w.ResendRemaining())
	}
	if w.AttemptsRemaining() != 10 {
		t.Fatalf("attempts remaining = %d, want reset to 10", w.AttemptsRemaining())
	}
	if w.Cooldown() != 180 {
		t.Fatalf("cooldown = %d, want 180", w.Cooldown())
	}
	if w.CanResend() {
		t.Fatal("resend enabled during cooldown")
	}

	for range 180 {
		w.Tick()
	}
	if !w.CanResend() {
		t.Fatal("resend still disabled after cooldown expired")
	}

	// The cooldown re-arms on every successful resend.
	w.Resend()
	w.ResendResult(true, 10, 3)
	if w.Cooldown() != 180 {
		t.Fatalf("cooldown = %d, want re-armed to 180", w.Cooldown())
	}
}

func TestResendQuotaDisablesControl(t *testing.T) {
	w := New()
	w.Resend()
	w.ResendResult(true, 10, 0)

	for range 180 {
		w.Tick()
	}

	if w.CanResend() {
		t.Fatal("resend enabled with no quota left")
	}
}

func TestFailedResendKeepsState(t *testing.T) {
	w := New()
	w.SetDigit(0, '7')

	w.Resend()
	w.ResendResult(false, 0, 0)

	if w.Code() != "7" {
		t.Fatalf("cells changed on failed resend: %q", w.Code())
	}
	if w.Cooldown() != 0 {
		t.Fatalf("cooldown armed on failed resend: %d", w.Cooldown())
	}
	if !w.CanResend() {
		t.Fatal("resend control stuck after failed resend")
	}
}
