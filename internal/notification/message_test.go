package notification

import (
	"testing"
	"time"

	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testEvent() domain.CancellationEvent {
	start := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC) // суббота
	return domain.CancellationEvent{
		BookingID: "b1",
		SlotStart: start,
		SlotEnd:   start.Add(time.Hour),
		CourtName: "Court 2",
	}
}

func TestCancellationEmail(t *testing.T) {
	msg := CancellationEmail(testEvent())

	assert.Equal(t, "A free slot is now available", msg.Subject)
	assert.Contains(t, msg.Body, "Court 2")
	assert.Contains(t, msg.Body, "Saturday, 14.06.2025 18:00")
}

func TestCancellationEmail_FallbackCourtName(t *testing.T) {
	event := testEvent()
	event.CourtName = ""

	msg := CancellationEmail(event)

	assert.Contains(t, msg.Body, fallbackCourtName)
}

func TestCancellationShortText(t *testing.T) {
	msg := CancellationShortText(testEvent())

	assert.Empty(t, msg.Subject)
	assert.Contains(t, msg.Body, "Court 2")
	assert.Contains(t, msg.Body, "14.06.2025 18:00")
}

func TestBookingOwnerMails(t *testing.T) {
	b := &domain.Booking{
		ID:        "b1",
		CourtName: "Court 2",
		SlotStart: time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC),
		SlotEnd:   time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC),
	}

	created := BookingCreatedEmail(b)
	assert.Contains(t, created.Subject, "14.06.2025")
	assert.Contains(t, created.Body, "Court 2")
	assert.Contains(t, created.Body, "18:00")
	assert.Contains(t, created.Body, "19:00")

	cancelled := BookingCancelledEmail(b)
	assert.Equal(t, "Your booking has been cancelled", cancelled.Subject)
	assert.Contains(t, cancelled.Body, "Court 2")
}
