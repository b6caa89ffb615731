package core

import "time"

// FrameClock turns wall-clock frame boundaries into tick deltas in seconds.
type FrameClock struct {
	maxDelta time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFrameClock constructs a clock that never reports more than maxDelta per
// frame. A non-positive maxDelta defaults to 100ms.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = 100 * time.Millisecond
	}
	return &FrameClock{maxDelta: maxDelta, now: time.Now}
}

// Delta returns the seconds elapsed since the previous call. The first call
// returns 0.
func (c *FrameClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta.Seconds()
}

// Reset forgets the previous frame so the next Delta returns 0.
func (c *FrameClock) Reset() { c.last = time.Time{} }
