package dto

import (
	"time"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	CourtName string `json:"court_name"`
	SlotStart string `json:"slot_start"`
	SlotEnd   string `json:"slot_end"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID                    string `json:"id"`
	Username              string `json:"username"`
	Email                 string `json:"email,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	TelegramChatID        *int64 `json:"telegram_chat_id,omitempty"`
	NotifyCancelEmail     bool   `json:"notify_cancel_email"`
	NotifyCancelMessenger bool   `json:"notify_cancel_messenger"`
	CreatedAt             string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		CourtName: b.CourtName,
		SlotStart: b.SlotStart.Format(time.RFC3339),
		SlotEnd:   b.SlotEnd.Format(time.RFC3339),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                    u.ID,
		Username:              u.Username,
		Email:                 u.Email,
		Phone:                 u.Phone,
		TelegramChatID:        u.TelegramChatID,
		NotifyCancelEmail:     u.NotifyCancelEmail,
		NotifyCancelMessenger: u.NotifyCancelMessenger,
		CreatedAt:             u.CreatedAt.Format(time.RFC3339),
	}
}
