package entity

import (
	"errors"
	"time"
)

// SessionTTL is how long a freshly issued session stays valid.
const SessionTTL = time.Hour

var (
	ErrUsernameTaken = errors.New("signup: username already taken")
	ErrEmailTaken    = errors.New("signup: email already registered")
	ErrPhoneTaken    = errors.New("signup: phone already registered")
)

type NewUser struct {
	ID            int64
	Username      string
	Email         string
	Phone         string
	FirstName     string
	LastName      string
	Gender        string
	DateOfBirth   string
	Nationality   string
	State         string
	City          string
	Address       string
	EmailVerified bool
	PhoneVerified bool
}

type Session struct {
	ID        int64
	SessionID string
	UserID    int64
	ExpiresAt time.Time
}
