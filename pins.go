package main

import "fmt"

// openDisplayPins resolves every configured pin name through the HAL.
func openDisplayPins(pc PinConfig) (DisplayPins, error) {
	var pins DisplayPins
	var err error
	if pins.Latch, err = openPin(pc.Latch); err != nil {
		return DisplayPins{}, fmt.Errorf("latch: %w", err)
	}
	if pins.Clock, err = openPin(pc.Clock); err != nil {
		return DisplayPins{}, fmt.Errorf("clock: %w", err)
	}
	if pins.Data, err = openPin(pc.Data); err != nil {
		return DisplayPins{}, fmt.Errorf("data: %w", err)
	}
	for i, name := range pc.Digits {
		p, err := openPin(name)
		if err != nil {
			return DisplayPins{}, fmt.Errorf("digit %d: %w", i+1, err)
		}
		pins.Digits = append(pins.Digits, p)
	}
	return pins, nil
}
