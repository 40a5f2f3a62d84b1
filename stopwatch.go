package main

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Stopwatch owns the counter and the display and drives both from a single
// loop.  Nothing else touches its state.
type Stopwatch struct {
	counter *Counter
	display *Display
	clock   Clock
	logger  *EventLogger
}

// NewStopwatch wires a counter and display together.  The counter's interval
// starts from the clock's current reading.
func NewStopwatch(counter *Counter, display *Display, clock Clock, logger *EventLogger) *Stopwatch {
	counter.Reset(clock.Now())
	return &Stopwatch{
		counter: counter,
		display: display,
		clock:   clock,
		logger:  logger,
	}
}

// Value returns the count currently on display.
func (s *Stopwatch) Value() uint { return s.counter.Value() }

// Step runs one pass of the loop: advance the counter if its interval has
// elapsed, then redraw every digit.
func (s *Stopwatch) Step() error {
	if s.counter.Tick(s.clock.Now()) && s.counter.Value() == 0 {
		s.logger.Event("counter wrapped", "modulus", counterModulus)
	}
	if err := s.display.Render(s.counter.Value()); err != nil {
		return fmt.Errorf("render %d: %w", s.counter.Value(), err)
	}
	return nil
}

// Run steps the stopwatch until ctx is cancelled, then blanks the display.
// It returns nil on cancellation, otherwise the first render error combined
// with any failure to blank the display afterwards.
func (s *Stopwatch) Run(ctx context.Context) error {
	s.logger.Event("stopwatch running", "positions", s.display.Positions())
	for {
		select {
		case <-ctx.Done():
			s.logger.Event("stopwatch stopped", "value", s.counter.Value())
			return s.display.Blank()
		default:
		}
		if err := s.Step(); err != nil {
			s.logger.Error("display failed", "error", err)
			return multierr.Append(err, s.display.Blank())
		}
	}
}
