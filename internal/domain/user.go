package domain

import "time"

type User struct {
	ID                    string    `json:"id"`
	Username              string    `json:"username"`
	Email                 string    `json:"email,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	TelegramChatID        *int64    `json:"telegram_chat_id,omitempty"`
	NotifyCancelEmail     bool      `json:"notify_cancel_email"`
	NotifyCancelMessenger bool      `json:"notify_cancel_messenger"`
	CreatedAt             time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Email          string
	Phone          string
	TelegramChatID *int64
}

type NotificationPrefsInput struct {
	NotifyCancelEmail     bool
	NotifyCancelMessenger bool
}
