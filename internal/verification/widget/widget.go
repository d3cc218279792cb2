// Package widget models the client OTP entry flow as a pure state machine,
// so the auto-submit, retry, and resend-cooldown rules can be tested without
// a UI harness. Callers feed it events (digits, verify results, ticks) and
// read the resulting state to drive rendering and network calls.
package widget

import "strings"

type State int

const (
	// StateCollecting mean the user is filling the six digit cells.
	StateCollecting State = iota

	// StateVerifying mean a verify call is in flight; input is frozen.
	StateVerifying

	// StateVerified is terminal; the code matched.
	StateVerified

	// StateRejected mean the last code was wrong; cells are cleared and the
	// user may type again until attempts run out.
	StateRejected

	// StateExhausted is terminal; no attempts remain and input is disabled.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateVerifying:
		return "verifying"
	case StateVerified:
		return "verified"
	case StateRejected:
		return "rejected"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

const (
	cellCount       = 6
	defaultAttempts = 10
	defaultResends  = 5
	cooldownSeconds = 180
)

// Widget holds the entry state for one verification cycle.
type Widget struct {
	state             State
	cells             [cellCount]byte
	focus             int
	attemptsRemaining int
	resendRemaining   int
	cooldown          int
	resending         bool
	submitted         bool
}

func New() *Widget {
	return &Widget{
		state:             StateCollecting,
		attemptsRemaining: defaultAttempts,
		resendRemaining:   defaultResends,
	}
}

func (w *Widget) State() State           { return w.state }
func (w *Widget) Focus() int             { return w.focus }
func (w *Widget) AttemptsRemaining() int { return w.attemptsRemaining }
func (w *Widget) ResendRemaining() int   { return w.resendRemaining }
func (w *Widget) Cooldown() int          { return w.cooldown }

// Code returns the digits entered so far.
func (w *Widget) Code() string {
	var sb strings.Builder
	for _, c := range w.cells {
		if c != 0 {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func (w *Widget) accepting() bool {
	return w.state == StateCollecting || w.state == StateRejected
}

// SetDigit places digit d into cell i and advances focus. It reports whether
// the fill is complete and verification should start; that fires at most once
// per full fill, so a caller acting on it never double-submits.
func (w *Widget) SetDigit(i int, d byte) bool {
	if !w.accepting() || i < 0 || i >= cellCount || d < '0' || d > '9' {
		return false
	}

	w.state = StateCollecting
	w.cells[i] = d
	if i < cellCount-1 {
		w.focus = i + 1
	}

	if w.submitted || len(w.Code()) != cellCount {
		return false
	}

	w.submitted = true
	w.state = StateVerifying

	return true
}

// ClearDigit handles Backspace on cell i: a filled cell is emptied in place,
// an empty cell moves focus back one cell.
func (w *Widget) ClearDigit(i int) {
	if !w.accepting() || i < 0 || i >= cellCount {
		return
	}

	if w.cells[i] != 0 {
		w.cells[i] = 0
		w.focus = i
		return
	}

	if i > 0 {
		w.focus = i - 1
	}
}

// VerifyResult applies the outcome of the in-flight verify call.
func (w *Widget) VerifyResult(ok bool, attemptsRemaining int) {
	if w.state != StateVerifying {
		return
	}

	if ok {
		w.state = StateVerified
		return
	}

	w.attemptsRemaining = attemptsRemaining
	if attemptsRemaining <= 0 {
		w.state = StateExhausted
		return
	}

	w.state = StateRejected
	w.clearCells()
}

// CanResend reports whether the resend control is enabled.
func (w *Widget) CanResend() bool {
	return w.accepting() && !w.resending && w.resendRemaining > 0 && w.cooldown == 0
}

// Resend marks a resend call in flight. It reports false when the control is
// disabled, so a caller never issues overlapping resends.
func (w *Widget) Resend() bool {
	if !w.CanResend() {
		return false
	}

	w.resending = true
	return true
}

// ResendResult applies the outcome of the in-flight resend call. A successful
// resend starts a fresh cycle: full attempts, cleared cells, and a re-armed
// cooldown.
func (w *Widget) ResendResult(ok bool, attemptsRemaining, resendRemaining int) {
	if !w.resending {
		return
	}
	w.resending = false

	if !ok {
		return
	}

	w.attemptsRemaining = attemptsRemaining
	w.resendRemaining = resendRemaining
	w.cooldown = cooldownSeconds
	w.state = StateCollecting
	w.clearCells()
}

// Tick advances the one-second cooldown countdown.
func (w *Widget) Tick() {
	if w.cooldown > 0 {
		w.cooldown--
	}
}

func (w *Widget) clearCells() {
	w.cells = [cellCount]byte{}
	w.focus = 0
	w.submitted = false
}
