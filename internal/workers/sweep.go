package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
)

// DefaultSweepInterval is used when NewSweepWorker gets a non-positive
// interval.
const DefaultSweepInterval = 10 * time.Minute

type sweepWorker struct {
	name     string
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewSweepWorker calls sweeper.Sweep every interval.
func NewSweepWorker(name string, sweeper Sweeper, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &sweepWorker{name: name, sweeper: sweeper, interval: interval, logger: logger}
}

func (w *sweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := w.sweeper.Sweep(ctx); n > 0 {
				w.logger.Debug().Str("worker", w.name).Int("removed", n).Msg("expired entries swept")
			}
		}
	}
}
