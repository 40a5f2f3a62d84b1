package main

import "time"

// counterModulus bounds the counter to four decimal digits.
const counterModulus = 10000

// Counter is the stopwatch value together with the time of its last
// increment.  It is owned by a single Stopwatch and is not safe for
// concurrent use.
type Counter struct {
	value    uint
	last     time.Duration
	interval time.Duration
}

// NewCounter returns a counter at zero that advances once per interval.
func NewCounter(interval time.Duration) *Counter {
	return &Counter{interval: interval}
}

// Tick advances the counter if more than one interval has passed since the
// last increment.  now is a reading of a monotonic clock.  It reports
// whether the value changed.
func (c *Counter) Tick(now time.Duration) bool {
	if now-c.last <= c.interval {
		return false
	}
	c.value = (c.value + 1) % counterModulus
	c.last = now
	return true
}

// Value returns the current count.
func (c *Counter) Value() uint { return c.value }

// Reset sets the count back to zero and restarts the interval from now.
func (c *Counter) Reset(now time.Duration) {
	c.value = 0
	c.last = now
}
