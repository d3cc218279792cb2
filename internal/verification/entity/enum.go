package entity

type OtpType int16

const (
	// OtpTypeUnknown is mean type is not known / not set.
	OtpTypeUnknown OtpType = 0

	// OtpTypeEmail mean the code is delivered to an email address.
	OtpTypeEmail OtpType = 1

	// OtpTypePhone mean the code is delivered to a 10 digit phone number.
	OtpTypePhone OtpType = 2
)

func OtpTypeFromString(str string) OtpType {
	switch str {
	case "email":
		return OtpTypeEmail
	case "phone":
		return OtpTypePhone
	default:
		return OtpTypeUnknown
	}
}

func (t OtpType) String() string {
	switch t {
	case OtpTypeEmail:
		return "email"
	case OtpTypePhone:
		return "phone"
	default:
		return "unknown"
	}
}

func (t OtpType) IsUnknown() bool {
	switch t {
	case OtpTypeEmail, OtpTypePhone:
		return false
	default:
		return true
	}
}
