package service

import (
	"context"
	"testing"

	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_OptOutByDefault(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	var captured *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			captured = user
		}).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, captured)
	assert.False(t, captured.NotifyCancelEmail)
	assert.False(t, captured.NotifyCancelMessenger)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_UpdatePrefs_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	prefs := domain.NotificationPrefsInput{NotifyCancelEmail: true}
	repo.EXPECT().UpdateNotificationPrefs(mock.Anything, "u1", prefs).Return(nil)

	err := svc.UpdateNotificationPrefs(context.Background(), "u1", prefs)

	require.NoError(t, err)
}

func TestUserService_UpdatePrefs_UserNotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().UpdateNotificationPrefs(mock.Anything, "missing", mock.Anything).
		Return(domain.ErrUserNotFound)

	err := svc.UpdateNotificationPrefs(context.Background(), "missing", domain.NotificationPrefsInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
