package domain

import "time"

// InterestRecord is a user's durable request to be told when capacity
// frees up on a given calendar date. At most one record exists per
// (user, date) pair; NotifiedAt stays nil until a cancellation cycle
// has processed the record.
type InterestRecord struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	InterestDate time.Time  `json:"interest_date"`
	CreatedAt    time.Time  `json:"created_at"`
	NotifiedAt   *time.Time `json:"notified_at,omitempty"`
}

// DateOnly normalises a timestamp to its calendar date (UTC midnight).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
