package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	CourtName string        `json:"court_name"`
	SlotStart time.Time     `json:"slot_start"`
	SlotEnd   time.Time     `json:"slot_end"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	UserID    string
	CourtName string
	SlotStart time.Time
	SlotEnd   time.Time
}
