package entity

import (
	"errors"
	"time"
)

const (
	// CodeExpiry is how long an issued code stays verifiable.
	CodeExpiry = 5 * time.Minute

	// MaxAttempts is the failed-verification ceiling per issued code.
	MaxAttempts = 10

	// MaxResends caps how many times a code can be re-issued for the same
	// identifier and channel before the current record expires.
	MaxResends = 5
)

var (
	ErrOtpNotFoundOrExpired = errors.New("verification: otp not found or expired")
	ErrInvalidCode          = errors.New("verification: otp code does not match")
	ErrAttemptsExhausted    = errors.New("verification: otp attempts exhausted")
	ErrResendQuotaExceeded  = errors.New("verification: otp resend quota exceeded")
	ErrNotifierFailure      = errors.New("verification: otp dispatch failed")
)

// OtpRecord is the ground truth for one verification cycle of an identifier.
type OtpRecord struct {
	ID         int64
	Identifier string
	Code       string
	Type       OtpType
	Attempts   int
	Resends    int
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Valid reports whether the record is still verifiable at the given time.
func (r OtpRecord) Valid(now time.Time) bool {
	return now.Before(r.ExpiresAt)
}

// Exhausted reports whether the record has burned all failed attempts.
func (r OtpRecord) Exhausted() bool {
	return r.Attempts >= MaxAttempts
}
