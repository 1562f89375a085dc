package ports

import (
	"context"
	"time"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

// InterestLedger is the durable coordination point of the cancellation
// notification flow. RegisterInterest is idempotent per (user, date),
// MarkNotified is idempotent per record.
type InterestLedger interface {
	RegisterInterest(ctx context.Context, rec *domain.InterestRecord) error
	FindUnnotified(ctx context.Context, date time.Time) ([]*domain.InterestRecord, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}
