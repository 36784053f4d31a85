package engine

import "sync/atomic"

// Clock hands out the sequence numbers stamped on every processed request.
//
// Seq values are strictly increasing per Session, so a caller can order
// replies even when they were submitted from different goroutines.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock whose first Next() returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next increments the clock and returns the new value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last value handed out, 0 if none.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
