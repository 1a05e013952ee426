package scheduler

import (
	"context"
	"time"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationCompleter interface {
	CompleteElapsed(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically moves confirmed reservations whose slot has passed
// into the completed status.
type Scheduler struct {
	reservationService reservationCompleter
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.reservationService.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range completed {
		s.logger.Info("reservation completed",
			logger.String("reservation_id", r.ID),
			logger.String("customer_id", r.CustomerID),
		)
	}
}
