package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type interestSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// Scheduler periodically deletes interest records that are already
// notified or past retention. Correctness never depends on it; it only
// keeps the ledger small.
type Scheduler struct {
	sweeper  interestSweeper
	interval time.Duration
	log      logger.Logger
}

func New(
	sweeper interestSweeper,
	interval time.Duration,
	log logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		log:      log,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("housekeeping scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("housekeeping scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.log.Error("interest sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.log.Info("stale interest records removed",
			logger.Int("count", int(n)),
		)
	}
}
