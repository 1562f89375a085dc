package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Email:          input.Email,
		Phone:          input.Phone,
		TelegramChatID: input.TelegramChatID,
		// Адрес без явного согласия не используется
		NotifyCancelEmail:     false,
		NotifyCancelMessenger: false,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateNotificationPrefs(ctx context.Context, id string, prefs domain.NotificationPrefsInput) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	if err := s.repo.UpdateNotificationPrefs(ctx, id, prefs); err != nil {
		return fmt.Errorf("update notification prefs: %w", err)
	}

	return nil
}
