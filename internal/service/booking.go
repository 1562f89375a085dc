package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	lifecycle   ports.LifecycleListener
	log         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	lifecycle ports.LifecycleListener,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		lifecycle:   lifecycle,
		log:         log,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.CourtName == "" {
		return nil, fmt.Errorf("%w: court_name is required", domain.ErrValidation)
	}
	if input.SlotStart.IsZero() || !input.SlotEnd.After(input.SlotStart) {
		return nil, fmt.Errorf("%w: slot_end must be after slot_start", domain.ErrValidation)
	}

	// проверка, что пользователь существует
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		CourtName: input.CourtName,
		SlotStart: input.SlotStart,
		SlotEnd:   input.SlotEnd,
		Status:    domain.BookingStatusActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
		logger.String("court", booking.CourtName),
	)

	go s.lifecycle.OnCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Cancel cancels an active booking and notifies the lifecycle listener
// synchronously. The listener absorbs every notification failure, so the
// cancellation itself always completes once the repository update did.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
	)

	s.lifecycle.OnCancelled(ctx, booking)

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
