package scheduler

import (
	"context"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationCompleter interface {
	CompleteExpired(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically sweeps finished stays into the completed state.
// A failed sweep is logged and retried on the next tick; it never takes the
// process down and never blocks request handling.
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

	s.logger.Info("completion sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("completion sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.reservationService.CompleteExpired(ctx)
	if err != nil {
		s.logger.Error("completion sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range completed {
		s.logger.Info("reservation completed",
			logger.String("reservation_id", r.ID),
			logger.String("lodging_id", r.LodgingID),
			logger.String("guest_id", r.GuestID),
		)
	}
}
