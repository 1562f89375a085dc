package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrBookingNotActive = errors.New("booking is not active")
	ErrSlotTaken        = errors.New("slot is already booked")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
