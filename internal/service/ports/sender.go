package ports

import (
	"context"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

// ChannelSender is one notification medium. A sender constructed without
// credentials is disabled: Send becomes a no-op success so that a missing
// integration never looks like a delivery failure.
type ChannelSender interface {
	Channel() domain.Channel
	Render(event domain.CancellationEvent) domain.Message
	Send(ctx context.Context, destination string, msg domain.Message) error
}
