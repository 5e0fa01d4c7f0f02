package engine

import "time"

// TimeProvider supplies wall-clock time to the frame clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures the time between consecutive ticks of the main loop
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts a clock at the provider's current time. Deltas are
// capped at maxDelta so a stalled terminal does not drain a whole health bar
// in one tick; maxDelta <= 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns the elapsed time since the previous call and restarts the measurement
func (c *FrameClock) Delta() time.Duration {
	now := c.provider.Now()
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
