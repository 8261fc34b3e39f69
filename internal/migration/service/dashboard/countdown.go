package dashboard

import (
	"context"
	"time"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
)

// Countdown is the local one second display clock.
type Countdown struct {
	interval time.Duration
}

// NewCountdown creates a countdown ticking once per second.
func NewCountdown() *Countdown {
	return &Countdown{interval: countdownInterval}
}

// Run emits seconds, seconds-1, ..., 0 one interval apart and then reports
// the end. A zero start ends immediately without ticking.
func (c *Countdown) Run(ctx context.Context, seconds uint64, obs CountdownObserver) error {
	if seconds == 0 {
		obs.CountdownEnded()
		return nil
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for remaining := seconds; ; remaining-- {
		obs.CountdownTick(model.NewCountdownDisplay(remaining))
		if remaining == 0 {
			obs.CountdownEnded()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
