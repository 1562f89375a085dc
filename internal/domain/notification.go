package domain

import "time"

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
)

// CancellationEvent describes a cancelled booking. A zero SlotStart marks
// the event malformed; consumers treat that as a no-op.
type CancellationEvent struct {
	BookingID string
	SlotStart time.Time
	SlotEnd   time.Time
	CourtName string
}

// ContactProfile is the notification profile of one user, resolved fresh
// for every cancellation cycle.
type ContactProfile struct {
	UserID         string
	Email          string
	Phone          string
	TelegramChatID *int64
	EmailOptIn     bool
	MessengerOptIn bool
}

// Message is a rendered notification. Subject is only meaningful for email.
type Message struct {
	Subject string
	Body    string
}

// DispatchOutcome records a single send attempt for one destination on one
// channel. It exists for logging only and is never persisted.
type DispatchOutcome struct {
	Channel     Channel
	Destination string
	Succeeded   bool
	ErrorDetail string
}
