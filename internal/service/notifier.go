package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/vgrishin/CourtBooker/internal/config"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CancellationNotifier fans a cancellation event out to everyone who
// registered interest in the freed date. Contact resolution is the single
// all-or-nothing boundary of a cycle; everything past it is isolated per
// recipient and per channel, and a record is marked notified once every
// eligible channel has been attempted, delivered or not.
type CancellationNotifier struct {
	ledger   ports.InterestLedger
	contacts ports.ContactDirectory
	senders  []ports.ChannelSender

	workers         int
	implicitConsent bool
	log             logger.Logger
}

func NewCancellationNotifier(
	ledger ports.InterestLedger,
	contacts ports.ContactDirectory,
	senders []ports.ChannelSender,
	cfg config.NotifyConfig,
	log logger.Logger,
) *CancellationNotifier {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &CancellationNotifier{
		ledger:          ledger,
		contacts:        contacts,
		senders:         senders,
		workers:         workers,
		implicitConsent: cfg.RegistrationImpliesConsent,
		log:             log,
	}
}

func (s *CancellationNotifier) NotifyCancellation(ctx context.Context, event domain.CancellationEvent) error {
	if event.SlotStart.IsZero() {
		s.log.Warn("cancellation event without slot start, skipping",
			logger.String("booking_id", event.BookingID),
		)
		return nil
	}

	date := domain.DateOnly(event.SlotStart)

	records, err := s.ledger.FindUnnotified(ctx, date)
	if err != nil {
		return fmt.Errorf("find unnotified interest: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	// Группируем записи по пользователю
	byUser := make(map[string][]*domain.InterestRecord)
	userIDs := make([]string, 0, len(records))
	for _, rec := range records {
		if _, seen := byUser[rec.UserID]; !seen {
			userIDs = append(userIDs, rec.UserID)
		}
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	// Single batch-fatal boundary: if the directory is unreachable, abort
	// with nothing marked, so the next cycle retries the same set.
	contacts, err := s.contacts.ResolveContacts(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("resolve contacts: %w", err)
	}

	// Render every channel's message once; they depend on the event only.
	messages := make(map[domain.Channel]domain.Message, len(s.senders))
	for _, sender := range s.senders {
		messages[sender.Channel()] = sender.Render(event)
	}

	s.log.Info("cancellation cycle started",
		logger.String("booking_id", event.BookingID),
		logger.String("date", date.Format(time.DateOnly)),
		logger.Int("records", len(records)),
		logger.Int("users", len(userIDs)),
	)

	cycle := newCycleState()
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for _, uid := range userIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(uid string) {
			defer wg.Done()
			defer func() { <-sem }()
			s.processUser(ctx, uid, byUser[uid], contacts[uid], messages, cycle)
		}(uid)
	}
	wg.Wait()

	sent, failed := cycle.totals()
	s.log.Info("cancellation cycle finished",
		logger.String("booking_id", event.BookingID),
		logger.Int("sent", sent),
		logger.Int("failed", failed),
	)

	return nil
}

// processUser attempts every eligible channel for one user, then marks the
// user's interest records notified regardless of delivery success. Nothing
// here may affect sibling users.
func (s *CancellationNotifier) processUser(
	ctx context.Context,
	userID string,
	records []*domain.InterestRecord,
	profile *domain.ContactProfile,
	messages map[domain.Channel]domain.Message,
	cycle *cycleState,
) {
	if profile == nil {
		s.log.Debug("no contact profile, nothing to send",
			logger.String("user_id", userID),
		)
	} else {
		for _, sender := range s.senders {
			ch := sender.Channel()

			dest, ok := s.destination(profile, ch)
			if !ok {
				continue
			}
			if !cycle.claim(ch, dest) {
				// этот адрес в текущем цикле уже обработан
				continue
			}

			outcome := domain.DispatchOutcome{Channel: ch, Destination: dest, Succeeded: true}
			if err := sender.Send(ctx, dest, messages[ch]); err != nil {
				outcome.Succeeded = false
				outcome.ErrorDetail = err.Error()
				s.log.Error("notification send failed",
					logger.String("user_id", userID),
					logger.String("channel", string(ch)),
					logger.String("destination", dest),
					logger.String("error", err.Error()),
				)
			}
			cycle.record(outcome)
		}
	}

	// Best-effort delivery is not a precondition: a permanently broken
	// channel must not re-notify the same user on every future cancellation.
	now := time.Now().UTC()
	for _, rec := range records {
		if err := s.ledger.MarkNotified(ctx, rec.ID, now); err != nil {
			s.log.Error("failed to mark interest notified",
				logger.String("record_id", rec.ID),
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
		}
	}
}

// destination selects the address for a channel, honouring the opt-in flags
// unless registration-implies-consent is configured. An opted-in channel
// with an empty address counts as not configured.
func (s *CancellationNotifier) destination(p *domain.ContactProfile, ch domain.Channel) (string, bool) {
	switch ch {
	case domain.ChannelEmail:
		if !s.consented(p.EmailOptIn) || p.Email == "" {
			return "", false
		}
		return p.Email, true
	case domain.ChannelSMS, domain.ChannelWhatsApp:
		if !s.consented(p.MessengerOptIn) || p.Phone == "" {
			return "", false
		}
		return p.Phone, true
	case domain.ChannelTelegram:
		if !s.consented(p.MessengerOptIn) || p.TelegramChatID == nil {
			return "", false
		}
		return strconv.FormatInt(*p.TelegramChatID, 10), true
	}
	return "", false
}

func (s *CancellationNotifier) consented(optIn bool) bool {
	return optIn || s.implicitConsent
}

// cycleState is the per-invocation de-duplication set plus dispatch
// counters, shared by the cycle's workers.
type cycleState struct {
	mu       sync.Mutex
	claimed  map[domain.Channel]map[string]struct{}
	outcomes []domain.DispatchOutcome
}

func newCycleState() *cycleState {
	return &cycleState{claimed: make(map[domain.Channel]map[string]struct{})}
}

// claim reserves a (channel, destination) pair for the current cycle.
// It returns false if the pair has been claimed before.
func (c *cycleState) claim(ch domain.Channel, destination string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	dests, ok := c.claimed[ch]
	if !ok {
		dests = make(map[string]struct{})
		c.claimed[ch] = dests
	}
	if _, dup := dests[destination]; dup {
		return false
	}
	dests[destination] = struct{}{}
	return true
}

func (c *cycleState) record(outcome domain.DispatchOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, outcome)
}

func (c *cycleState) totals() (sent, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.outcomes {
		if o.Succeeded {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}
