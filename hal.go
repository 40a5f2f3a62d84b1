//go:build !linux || !(arm || arm64) || disablegpio

package main

// This file is the desktop stand-in for the GPIO layer.  Every pin is an
// in-memory periph test pin, so the stopwatch runs (and can be debugged)
// without Raspberry Pi hardware.  hal_rpi.go provides the real thing.

import (
	"strconv"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// defaultSerialDevice is empty on desktops; there is no board UART to open.
const defaultSerialDevice = ""

// initGPIO performs any global initialisation required to access GPIO pins.
// The stub has nothing to do.
func initGPIO() error {
	return nil
}

// openPin returns a test pin that simply remembers the last level written.
func openPin(name string) (gpio.PinOut, error) {
	num := -1
	if n, err := strconv.Atoi(strings.TrimPrefix(name, "GPIO")); err == nil {
		num = n
	}
	return &gpiotest.Pin{N: name, Num: num}, nil
}
