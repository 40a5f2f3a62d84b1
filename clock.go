package main

import "time"

// Clock supplies monotonic readings measured from an arbitrary origin.  The
// stopwatch only ever subtracts two readings so the origin does not matter.
type Clock interface {
	Now() time.Duration
}

// monotonicClock measures time since it was created using the runtime's
// monotonic clock reading.
type monotonicClock struct {
	start time.Time
}

func newMonotonicClock() *monotonicClock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
