package listener

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func testBooking() *domain.Booking {
	start := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:        "b1",
		UserID:    "u1",
		CourtName: "Court 2",
		SlotStart: start,
		SlotEnd:   start.Add(time.Hour),
		Status:    domain.BookingStatusCancelled,
	}
}

func ownerProfile() map[string]*domain.ContactProfile {
	return map[string]*domain.ContactProfile{
		"u1": {UserID: "u1", Email: "owner@example.com"},
	}
}

func TestListener_OnCancelled_MailsOwnerAndNotifies(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)
	b := testBooking()

	contacts.EXPECT().ResolveContacts(mock.Anything, []string{"u1"}).Return(ownerProfile(), nil)
	email.EXPECT().Send(mock.Anything, "owner@example.com", mock.Anything).Return(nil)

	var event domain.CancellationEvent
	notifier.EXPECT().NotifyCancellation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e domain.CancellationEvent) {
			event = e
		}).Return(nil)

	l.OnCancelled(context.Background(), b)

	assert.Equal(t, b.ID, event.BookingID)
	assert.Equal(t, b.SlotStart, event.SlotStart)
	assert.Equal(t, b.CourtName, event.CourtName)
}

func TestListener_OnCancelled_NotifierErrorAbsorbed(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)

	contacts.EXPECT().ResolveContacts(mock.Anything, mock.Anything).Return(ownerProfile(), nil)
	email.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyCancellation(mock.Anything, mock.Anything).
		Return(errors.New("directory unreachable"))

	assert.NotPanics(t, func() {
		l.OnCancelled(context.Background(), testBooking())
	})
}

func TestListener_OnCancelled_PanicContained(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)

	contacts.EXPECT().ResolveContacts(mock.Anything, mock.Anything).Return(ownerProfile(), nil)
	email.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyCancellation(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e domain.CancellationEvent) {
			panic("boom")
		}).Return(nil)

	assert.NotPanics(t, func() {
		l.OnCancelled(context.Background(), testBooking())
	})
}

func TestListener_OnCancelled_OwnerLookupFails_StillNotifies(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)

	contacts.EXPECT().ResolveContacts(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))
	notifier.EXPECT().NotifyCancellation(mock.Anything, mock.Anything).Return(nil)

	l.OnCancelled(context.Background(), testBooking())

	email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestListener_OnCancelled_OwnerWithoutEmail_SkipsMail(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)

	contacts.EXPECT().ResolveContacts(mock.Anything, mock.Anything).
		Return(map[string]*domain.ContactProfile{"u1": {UserID: "u1"}}, nil)
	notifier.EXPECT().NotifyCancellation(mock.Anything, mock.Anything).Return(nil)

	l.OnCancelled(context.Background(), testBooking())

	email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestListener_OnCreated_MailsOwnerOnly(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)

	contacts.EXPECT().ResolveContacts(mock.Anything, []string{"u1"}).Return(ownerProfile(), nil)
	email.EXPECT().Send(mock.Anything, "owner@example.com", mock.Anything).Return(nil)

	l.OnCreated(context.Background(), testBooking())

	notifier.AssertNotCalled(t, "NotifyCancellation", mock.Anything, mock.Anything)
}

func TestListener_OnCreated_MailErrorAbsorbed(t *testing.T) {
	notifier := mocks.NewMockCancellationNotifier(t)
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockChannelSender(t)
	log := newTestLogger(t)

	l := New(notifier, contacts, email, log)

	contacts.EXPECT().ResolveContacts(mock.Anything, mock.Anything).Return(ownerProfile(), nil)
	email.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp timeout"))

	assert.NotPanics(t, func() {
		l.OnCreated(context.Background(), testBooking())
	})
}
