package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwatch.yaml")
	cm := &ConfigManager{Path: path}
	require.NoError(t, cm.Load())

	cfg := cm.Get()
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, 50*time.Millisecond, cfg.Interval)
	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.NoError(t, Validate(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, cfg, onDisk)
}

func TestDefaultSerialChannelIsPresent(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, defaultSerialDevice, cfg.Serial.Device)
	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.NoError(t, Validate(cfg))
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwatch.yaml")
	doc := "interval: 100ms\ndisplay:\n  base: 16\n  show_zero: true\npins:\n  digits: [GPIO20, GPIO21, GPIO22, GPIO23]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cm := &ConfigManager{Path: path}
	require.NoError(t, cm.Load())
	cfg := cm.Get()
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.Equal(t, uint(16), cfg.Display.Base)
	assert.True(t, cfg.Display.ShowZero)
	assert.Equal(t, "GPIO11", cfg.Pins.Latch)
	assert.Equal(t, []string{"GPIO20", "GPIO21", "GPIO22", "GPIO23"}, cfg.Pins.Digits)
	assert.NoError(t, Validate(cfg))
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: [nope"), 0644))
	assert.Error(t, (&ConfigManager{Path: path}).Load())
}

func TestOverrideDoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwatch.yaml")
	cm := &ConfigManager{Path: path}
	require.NoError(t, cm.Load())
	cm.Override(func(c *Config) { c.Interval = time.Second })
	assert.Equal(t, time.Second, cm.Get().Interval)

	fresh := &ConfigManager{Path: path}
	require.NoError(t, fresh.Load())
	assert.Equal(t, 50*time.Millisecond, fresh.Get().Interval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"negative hold", func(c *Config) { c.Display.DigitHold = -time.Millisecond }},
		{"octal base", func(c *Config) { c.Display.Base = 8 }},
		{"three digits", func(c *Config) { c.Pins.Digits = c.Pins.Digits[:3] }},
		{"missing latch", func(c *Config) { c.Pins.Latch = "" }},
		{"shared pin", func(c *Config) { c.Pins.Data = c.Pins.Clock }},
		{"digit reuses latch", func(c *Config) { c.Pins.Digits = []string{"GPIO4", "GPIO5", "GPIO6", "GPIO11"} }},
		{"serial without baud", func(c *Config) { c.Serial = SerialConfig{Device: "/dev/ttyAMA0"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, Validate(cfg), ErrInvalidConfig)
		})
	}
}
