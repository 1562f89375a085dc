package ports

import (
	"context"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateNotificationPrefs(ctx context.Context, id string, prefs domain.NotificationPrefsInput) error
}
