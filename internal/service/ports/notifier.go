package ports

import (
	"context"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

// CancellationNotifier fans one cancellation event out to every user who
// registered interest in the affected date. The returned error covers only
// the batch-fatal contact lookup; per-recipient failures are absorbed.
type CancellationNotifier interface {
	NotifyCancellation(ctx context.Context, event domain.CancellationEvent) error
}

// LifecycleListener observes booking transitions. Implementations must
// never panic or fail into the caller: a broken notification must not
// break the booking transaction.
type LifecycleListener interface {
	OnCreated(ctx context.Context, b *domain.Booking)
	OnCancelled(ctx context.Context, b *domain.Booking)
}
