package main

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/gpio"
)

// Digit enable lines sink the common cathode of each position, so a digit
// is lit while its line is driven low.
const (
	digitOn  = gpio.Low
	digitOff = gpio.High
)

// DisplayPins groups the output lines used by the display.  Digits are
// ordered from the most significant position to the least significant.
type DisplayPins struct {
	Latch  gpio.PinOut
	Clock  gpio.PinOut
	Data   gpio.PinOut
	Digits []gpio.PinOut
}

// Display multiplexes a row of 7-segment digits that share one shift
// register.  Only one position is enabled at a time; persistence of vision
// does the rest provided Render is called often enough.
type Display struct {
	pins     DisplayPins
	base     uint
	showZero bool
	hold     time.Duration
}

// NewDisplay configures every pin as an output with all digits switched off
// and returns a display ready to render.
func NewDisplay(pins DisplayPins, opts DisplayConfig) (*Display, error) {
	if pins.Latch == nil || pins.Clock == nil || pins.Data == nil {
		return nil, fmt.Errorf("%w: shift register pins not set", ErrInvalidConfig)
	}
	if len(pins.Digits) == 0 {
		return nil, fmt.Errorf("%w: no digit pins", ErrInvalidConfig)
	}
	d := &Display{
		pins:     pins,
		base:     opts.Base,
		showZero: opts.ShowZero,
		hold:     opts.DigitHold,
	}
	if d.base == 0 {
		d.base = 10
	}
	if d.base != 10 && d.base != 16 {
		return nil, fmt.Errorf("%w: base must be 10 or 16, got %d", ErrInvalidConfig, d.base)
	}
	for _, p := range []gpio.PinOut{pins.Latch, pins.Clock, pins.Data} {
		if err := out(p, gpio.Low); err != nil {
			return nil, err
		}
	}
	for _, p := range pins.Digits {
		if err := out(p, digitOff); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Positions returns the number of digit positions on the display.
func (d *Display) Positions() int { return len(d.pins.Digits) }

// Render draws value once across the display, least significant digit
// first.  Each digit is shown and then the register is cleared before the
// next position is enabled.
func (d *Display) Render(value uint) error {
	digits := Digits(value, d.base)
	if len(digits) == 0 && d.showZero {
		digits = []byte{0}
	}
	pos := len(d.pins.Digits) - 1
	for _, digit := range digits {
		if pos < 0 {
			break
		}
		if err := d.activate(pos); err != nil {
			return err
		}
		if err := d.writeReg(encodeDigit(digit)); err != nil {
			return err
		}
		if d.hold > 0 {
			time.Sleep(d.hold)
		}
		pos--
		if err := d.writeReg(blankPattern); err != nil {
			return err
		}
	}
	return nil
}

// Blank switches every position off and clears the register.
func (d *Display) Blank() error {
	if err := d.deactivateAll(); err != nil {
		return err
	}
	return d.writeReg(blankPattern)
}

// Close blanks the display and halts every pin.  All pins are halted even
// if some of them fail.
func (d *Display) Close() error {
	err := d.Blank()
	pins := append([]gpio.PinOut{d.pins.Latch, d.pins.Clock, d.pins.Data}, d.pins.Digits...)
	for _, p := range pins {
		if herr := p.Halt(); herr != nil {
			err = multierr.Append(err, fmt.Errorf("halt %s: %w", p.Name(), herr))
		}
	}
	return err
}

// activate enables exactly one digit position.  All positions are turned
// off first so the previous digit does not ghost onto the new one.
func (d *Display) activate(pos int) error {
	if err := d.deactivateAll(); err != nil {
		return err
	}
	return out(d.pins.Digits[pos], digitOn)
}

func (d *Display) deactivateAll() error {
	for _, p := range d.pins.Digits {
		if err := out(p, digitOff); err != nil {
			return err
		}
	}
	return nil
}

// writeReg shifts b into the register and latches it onto the outputs.
func (d *Display) writeReg(b byte) error {
	if err := out(d.pins.Latch, gpio.Low); err != nil {
		return err
	}
	if err := shiftOut(d.pins.Data, d.pins.Clock, b); err != nil {
		return err
	}
	return out(d.pins.Latch, gpio.High)
}

// shiftOut clocks b out most significant bit first.  Data is set up before
// the rising clock edge, which is when the register samples it.
func shiftOut(data, clock gpio.PinOut, b byte) error {
	for i := 7; i >= 0; i-- {
		if err := out(data, gpio.Level(b&(1<<uint(i)) != 0)); err != nil {
			return err
		}
		if err := out(clock, gpio.High); err != nil {
			return err
		}
		if err := out(clock, gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

func out(p gpio.PinOut, l gpio.Level) error {
	if err := p.Out(l); err != nil {
		return fmt.Errorf("write %s: %w", p.Name(), err)
	}
	return nil
}
