package dashboard

import "time"

// Celebration is the one-shot effect shown when the network goes live.
type Celebration struct {
	duration time.Duration
	fired    bool
	until    time.Time
}

// NewCelebration creates a celebration lasting duration.
func NewCelebration(duration time.Duration) *Celebration {
	if duration <= 0 {
		duration = DefaultCelebrationDuration
	}
	return &Celebration{duration: duration}
}

// Trigger starts the effect on the first call only.
func (c *Celebration) Trigger(now time.Time) bool {
	if c.fired {
		return false
	}
	c.fired = true
	c.until = now.Add(c.duration)
	return true
}

// Active reports whether the effect is showing at now.
func (c *Celebration) Active(now time.Time) bool {
	return c.fired && now.Before(c.until)
}

// Duration returns how long the effect lasts.
func (c *Celebration) Duration() time.Duration {
	return c.duration
}
