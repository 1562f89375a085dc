package dto

type RegisterInterestRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Date   string `json:"date" binding:"required"`
}

type CreateBookingRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	CourtName string `json:"court_name" binding:"required"`
	SlotStart string `json:"slot_start" binding:"required"`
	SlotEnd   string `json:"slot_end" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type NotificationPrefsRequest struct {
	NotifyCancelEmail     bool `json:"notify_cancel_email"`
	NotifyCancelMessenger bool `json:"notify_cancel_messenger"`
}
