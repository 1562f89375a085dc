package listener

import (
	"context"
	"runtime/debug"

	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/notification"
	"github.com/vgrishin/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Listener is the event boundary between the booking lifecycle and the
// notification subsystem. It runs on the caller's goroutine but is fully
// insulated: panics and errors from anything beneath it are logged and
// discarded, never surfaced to the booking transaction.
type Listener struct {
	notifier ports.CancellationNotifier
	contacts ports.ContactDirectory
	email    ports.ChannelSender
	log      logger.Logger
}

func New(
	notifier ports.CancellationNotifier,
	contacts ports.ContactDirectory,
	email ports.ChannelSender,
	log logger.Logger,
) *Listener {
	return &Listener{
		notifier: notifier,
		contacts: contacts,
		email:    email,
		log:      log,
	}
}

// OnCreated sends the owner a booking confirmation. Interest notifications
// only matter for freed capacity, so nothing else happens here.
func (l *Listener) OnCreated(ctx context.Context, b *domain.Booking) {
	defer l.recovered("on_created")

	l.sendOwnerMail(ctx, b, notification.BookingCreatedEmail(b))
}

// OnCancelled sends the owner a cancellation mail and then fans the freed
// slot out to every user who registered interest in its date.
func (l *Listener) OnCancelled(ctx context.Context, b *domain.Booking) {
	defer l.recovered("on_cancelled")

	l.sendOwnerMail(ctx, b, notification.BookingCancelledEmail(b))

	event := domain.CancellationEvent{
		BookingID: b.ID,
		SlotStart: b.SlotStart,
		SlotEnd:   b.SlotEnd,
		CourtName: b.CourtName,
	}

	if err := l.notifier.NotifyCancellation(ctx, event); err != nil {
		l.log.Error("cancellation interest cycle failed",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (l *Listener) sendOwnerMail(ctx context.Context, b *domain.Booking, msg domain.Message) {
	contacts, err := l.contacts.ResolveContacts(ctx, []string{b.UserID})
	if err != nil {
		l.log.Error("failed to resolve booking owner",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	profile, ok := contacts[b.UserID]
	if !ok || profile.Email == "" {
		l.log.Debug("booking owner has no email, skipping mail",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
		)
		return
	}

	if err := l.email.Send(ctx, profile.Email, msg); err != nil {
		l.log.Error("owner mail failed",
			logger.String("booking_id", b.ID),
			logger.String("to", profile.Email),
			logger.String("error", err.Error()),
		)
	}
}

func (l *Listener) recovered(op string) {
	if r := recover(); r != nil {
		l.log.Error("panic in lifecycle listener",
			logger.String("op", op),
			logger.Any("panic", r),
			logger.String("stack", string(debug.Stack())),
		)
	}
}
