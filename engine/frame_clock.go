package engine

import "time"

// FrameClock turns wall-clock readings into bounded per-frame deltas
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
	started  bool
}

// NewFrameClock creates a clock; maxDelta <= 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Tick returns the time since the previous Tick, zero on the first call
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
