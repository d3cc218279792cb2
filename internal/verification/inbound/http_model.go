package inbound

type SendOtpRequest struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
}

type SendOtpResponse struct {
	Success           bool `json:"success"`
	AttemptsRemaining int  `json:"attempts_remaining"`
	ResendRemaining   int  `json:"resend_remaining"`
}

func (SendOtpResponse) Message() string {
	return "OTP sent successfully"
}

type VerifyOtpRequest struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
	Code       string `json:"code"`
}

type VerifyOtpResponse struct {
	Success bool `json:"success"`
}

func (VerifyOtpResponse) Message() string {
	return "OTP verified successfully"
}
