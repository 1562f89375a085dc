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

type InterestService struct {
	ledger    ports.InterestLedger
	retention time.Duration
	log       logger.Logger
}

func NewInterestService(ledger ports.InterestLedger, retention time.Duration, log logger.Logger) *InterestService {
	return &InterestService{
		ledger:    ledger,
		retention: retention,
		log:       log,
	}
}

// RegisterInterest records that the user wants to hear about freed
// capacity on the given date. Registering twice is indistinguishable from
// registering once.
func (s *InterestService) RegisterInterest(ctx context.Context, userID string, date time.Time) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	rec := &domain.InterestRecord{
		ID:           uuid.New().String(),
		UserID:       userID,
		InterestDate: domain.DateOnly(date),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.ledger.RegisterInterest(ctx, rec); err != nil {
		return fmt.Errorf("register interest: %w", err)
	}

	s.log.Info("interest registered",
		logger.String("user_id", userID),
		logger.String("date", rec.InterestDate.Format(time.DateOnly)),
	)

	return nil
}

// Sweep drops interest records that were already notified or fell out of
// the retention window. Driven by the scheduler.
func (s *InterestService) Sweep(ctx context.Context) (int64, error) {
	before := time.Now().UTC().Add(-s.retention)

	n, err := s.ledger.DeleteStale(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("sweep interest: %w", err)
	}

	return n, nil
}
