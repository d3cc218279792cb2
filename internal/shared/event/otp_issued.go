package event

const OtpIssuedDestination string = "otp_issued"
const OtpIssuedDestinationConsumerNotification string = "otp_issued_notification"

type OtpIssuedMessage struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
	Code       string `json:"code"`
	ExpiresIn  int64  `json:"expires_in_seconds"`
}
