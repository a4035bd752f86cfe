package core

import (
	"sync"
	"time"
)

// Millis is a point on the duel's monotonic clock, in milliseconds.
// Every timing field in the engine (penalties, windows, completion times)
// uses this unit.
type Millis int64

// Duration converts the value into a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// MillisOf converts a time.Duration into Millis, truncating.
func MillisOf(d time.Duration) Millis {
	return Millis(d / time.Millisecond)
}

// Clock is a monotonic time source.
type Clock interface {
	Now() Millis
}

// SystemClock measures elapsed milliseconds since it was created using the
// runtime's monotonic reading, so wall-clock adjustments never move it.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose zero is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the elapsed milliseconds since creation.
func (c *SystemClock) Now() Millis {
	return MillisOf(time.Since(c.start))
}

// At converts a wall time captured by the runtime (for example a Bubble Tea
// tick timestamp) to this clock's units.
func (c *SystemClock) At(t time.Time) Millis {
	return MillisOf(t.Sub(c.start))
}

// ManualClock is a Clock that only moves when told to. Used by tests and
// scripted simulations.
type ManualClock struct {
	mu  sync.Mutex
	now Millis
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start Millis) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() Millis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward and returns the new time.
// Negative values are ignored since the clock is monotonic.
func (c *ManualClock) Advance(d Millis) Millis {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now += d
	}
	return c.now
}

// Set jumps to t if t is not in the past.
func (c *ManualClock) Set(t Millis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t > c.now {
		c.now = t
	}
}
