package notification

import (
	"fmt"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

const fallbackCourtName = "Selected court"

// CancellationEmail renders the "free slot" mail sent to interested users.
// It depends on the event only, so one rendering serves every recipient of
// a cycle.
func CancellationEmail(event domain.CancellationEvent) domain.Message {
	court := event.CourtName
	if court == "" {
		court = fallbackCourtName
	}
	when := event.SlotStart.Format("Monday, 02.01.2006 15:04")

	body := fmt.Sprintf(
		"Good news!\n\n"+
			"A booking has just been cancelled for %s.\n"+
			"Date and time: %s\n\n"+
			"If you are still interested in this slot, please log in and make a booking as soon as possible.\n",
		court, when,
	)

	return domain.Message{
		Subject: "A free slot is now available",
		Body:    body,
	}
}

// CancellationShortText renders the short plain text used by the SMS,
// WhatsApp and Telegram channels.
func CancellationShortText(event domain.CancellationEvent) domain.Message {
	court := event.CourtName
	if court == "" {
		court = fallbackCourtName
	}
	when := event.SlotStart.Format("02.01.2006 15:04")

	return domain.Message{
		Body: fmt.Sprintf(
			"Free slot available!\n%s, %s\nBook now via CourtBooker.",
			court, when,
		),
	}
}

// BookingCreatedEmail is the confirmation mail for the booking owner.
func BookingCreatedEmail(b *domain.Booking) domain.Message {
	return domain.Message{
		Subject: fmt.Sprintf("Your booking for %s", b.SlotStart.Format("02.01.2006")),
		Body: fmt.Sprintf(
			"we have reserved %s, %s - %s for you.\n",
			b.CourtName,
			b.SlotStart.Format("02.01.2006 15:04"),
			b.SlotEnd.Format("15:04"),
		),
	}
}

// BookingCancelledEmail is the cancellation mail for the booking owner.
func BookingCancelledEmail(b *domain.Booking) domain.Message {
	return domain.Message{
		Subject: "Your booking has been cancelled",
		Body: fmt.Sprintf(
			"we have just cancelled %s, %s - %s for you.\n",
			b.CourtName,
			b.SlotStart.Format("02.01.2006 15:04"),
			b.SlotEnd.Format("15:04"),
		),
	}
}
