package service

import (
	"context"
	"testing"
	"time"

	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validBookingInput() domain.CreateBookingInput {
	start := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	return domain.CreateBookingInput{
		UserID:    "u1",
		CourtName: "Court 2",
		SlotStart: start,
		SlotEnd:   start.Add(time.Hour),
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	lifecycle.EXPECT().OnCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_UserNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	input := validBookingInput()
	input.UserID = "missing"
	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Create_InvalidSlot(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	input := validBookingInput()
	input.SlotEnd = input.SlotStart.Add(-time.Hour)
	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_SlotTaken(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := svc.Create(context.Background(), validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Cancel_NotifiesListenerSynchronously(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	cancelled := &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		Status: domain.BookingStatusCancelled,
	}
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil)

	listenerDone := false
	lifecycle.EXPECT().OnCancelled(mock.Anything, cancelled).
		Run(func(ctx context.Context, b *domain.Booking) {
			listenerDone = true
		}).Return()

	booking, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	// слушатель отработал до возврата из Cancel
	assert.True(t, listenerDone)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	bookingRepo.EXPECT().Cancel(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	lifecycle.AssertNotCalled(t, "OnCancelled", mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(nil, domain.ErrBookingNotActive)

	_, err := svc.Cancel(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
	lifecycle.AssertNotCalled(t, "OnCancelled", mock.Anything, mock.Anything)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	lifecycle := mocks.NewMockLifecycleListener(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, userRepo, lifecycle, log)

	bookings := []*domain.Booking{
		{ID: "b1", UserID: "u1", Status: domain.BookingStatusActive},
	}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
