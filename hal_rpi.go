//go:build linux && (arm || arm64) && !disablegpio

// This file provides the Raspberry Pi implementation of the HAL functions
// using the periph.io library.  When building for other platforms, or when
// the build tag "disablegpio" is specified, hal.go is used instead.

package main

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// defaultSerialDevice is the Pi's primary UART alias on the GPIO header.
const defaultSerialDevice = "/dev/serial0"

// initGPIO initialises periph host state.  Returning an error here prevents
// the stopwatch from starting.
func initGPIO() error {
	_, err := host.Init()
	return err
}

// openPin looks a pin up by name in the periph registry.  initGPIO must have
// been called first.
func openPin(name string) (gpio.PinOut, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown GPIO pin %q", name)
	}
	return p, nil
}
