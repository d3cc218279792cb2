package entity

// Channel identifies the transport used to reach a recipient.
type Channel int16

const (
	ChannelUnknown Channel = iota
	ChannelEmail
	ChannelSMS
)

func (c Channel) String() string {
	switch c {
	case ChannelEmail:
		return "email"
	case ChannelSMS:
		return "sms"
	default:
		return "unknown"
	}
}

// DeliveryStatus tracks the lifecycle of a single delivery attempt.
type DeliveryStatus int16

const (
	DeliveryStatusUnknown DeliveryStatus = iota
	DeliveryStatusQueued
	DeliveryStatusSent
	DeliveryStatusFailed
)

func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryStatusQueued:
		return "queued"
	case DeliveryStatusSent:
		return "sent"
	case DeliveryStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type CreateDeliveryLog struct {
	ID        int64
	Channel   Channel
	Recipient string
	Subject   string
	Status    DeliveryStatus
}

type UpdateDeliveryLog struct {
	ID               int64
	Status           DeliveryStatus
	ProviderResponse map[string]string
}
