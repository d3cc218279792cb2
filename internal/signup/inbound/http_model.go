package inbound

import (
	"net/http"
	"time"
)

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type SignupRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"`
	Nationality   string `json:"nationality"`
	State         string `json:"state"`
	City          string `json:"city"`
	Address       string `json:"address"`
	EmailVerified bool   `json:"email_verified"`
	PhoneVerified bool   `json:"phone_verified"`
}

type SignupResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (SignupResponse) StatusCode() int {
	return http.StatusCreated
}

func (SignupResponse) Message() string {
	return "Account created successfully"
}
