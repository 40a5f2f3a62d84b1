package main

import "time"

// PinConfig names the GPIO lines wired to the display.  Names are resolved
// through the periph pin registry, so BCM names such as "GPIO11" and header
// positions such as "P1_23" are both accepted.
type PinConfig struct {
	Latch  string   `yaml:"latch"`  // STCP on the 74HC595
	Clock  string   `yaml:"clock"`  // SHCP on the 74HC595
	Data   string   `yaml:"data"`   // DS on the 74HC595
	Digits []string `yaml:"digits"` // digit enable lines, most significant first
}

// DisplayConfig controls how the counter is drawn.
type DisplayConfig struct {
	Base      uint          `yaml:"base"`       // 10 or 16
	ShowZero  bool          `yaml:"show_zero"`  // draw a single 0 instead of a blank display
	DigitHold time.Duration `yaml:"digit_hold"` // time each digit stays lit; 0 for full speed
}

// SerialConfig describes the diagnostic serial channel.  An empty Device
// disables it.
type SerialConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// Config is the top-level structure serialised to the YAML config file.
type Config struct {
	Pins     PinConfig     `yaml:"pins"`
	Interval time.Duration `yaml:"interval"` // time between counter increments
	Display  DisplayConfig `yaml:"display"`
	Serial   SerialConfig  `yaml:"serial"`
	LogFile  string        `yaml:"log_file"`
}

// defaultConfig mirrors the reference breadboard wiring: shift register on
// 10/11/12 and the four digit lines on 4 to 7.
func defaultConfig() Config {
	return Config{
		Pins: PinConfig{
			Latch:  "GPIO11",
			Clock:  "GPIO10",
			Data:   "GPIO12",
			Digits: []string{"GPIO4", "GPIO5", "GPIO6", "GPIO7"},
		},
		Interval: 50 * time.Millisecond,
		Display: DisplayConfig{
			Base: 10,
		},
		Serial: SerialConfig{
			Device: defaultSerialDevice,
			Baud:   9600,
		},
		LogFile: "stopwatch.log",
	}
}
