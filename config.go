package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is the default filename for persisted configuration.
const defaultConfigPath = "stopwatch.yaml"

// ErrInvalidConfig is returned (wrapped) when configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigManager wraps the loaded configuration and a mutex for concurrent
// access.  The zero value reads from defaultConfigPath.
type ConfigManager struct {
	Path string

	mu     sync.RWMutex
	cfg    Config
	loaded bool
}

func (cm *ConfigManager) path() string {
	if cm.Path == "" {
		return defaultConfigPath
	}
	return cm.Path
}

// Load reads configuration from disk.  If the file does not exist, the
// default configuration (the reference breadboard wiring) is written out so
// it can be edited for the board at hand.  Fields missing from an existing
// file keep their default values.
func (cm *ConfigManager) Load() error {
	cm.mu.Lock()
	if cm.loaded {
		cm.mu.Unlock()
		return nil
	}
	data, err := os.ReadFile(cm.path())
	if err != nil {
		if os.IsNotExist(err) {
			cm.cfg = defaultConfig()
			cm.loaded = true
			// Save takes a read lock on the same mutex.
			cm.mu.Unlock()
			return cm.Save()
		}
		cm.mu.Unlock()
		return fmt.Errorf("unable to read config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cm.mu.Unlock()
		return fmt.Errorf("invalid %s: %w", cm.path(), err)
	}
	cm.cfg = cfg
	cm.loaded = true
	cm.mu.Unlock()
	return nil
}

// Save writes the configuration to disk atomically.
func (cm *ConfigManager) Save() error {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	bytes, err := yaml.Marshal(cm.cfg)
	if err != nil {
		return err
	}
	tmpPath := cm.path() + ".tmp"
	if err := os.WriteFile(tmpPath, bytes, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, cm.path())
}

// Get returns a copy of the current configuration.  The Digits slice is
// shared; callers must treat the returned Config as immutable.
func (cm *ConfigManager) Get() Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.cfg
}

// Override applies fn to the in-memory configuration without persisting
// it.  Command line flags use this so they do not rewrite the file.
func (cm *ConfigManager) Override(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	fn(&cm.cfg)
}

// Validate checks configuration correctness.  It never modifies cfg.
func Validate(cfg Config) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, cfg.Interval)
	}
	if cfg.Display.DigitHold < 0 {
		return fmt.Errorf("%w: digit_hold must not be negative", ErrInvalidConfig)
	}
	if cfg.Display.Base != 10 && cfg.Display.Base != 16 {
		return fmt.Errorf("%w: base must be 10 or 16, got %d", ErrInvalidConfig, cfg.Display.Base)
	}
	if n := len(cfg.Pins.Digits); n != 4 {
		return fmt.Errorf("%w: expected 4 digit pins, got %d", ErrInvalidConfig, n)
	}

	seen := make(map[string]string)
	check := func(role, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s pin not set", ErrInvalidConfig, role)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: pin %s used for both %s and %s", ErrInvalidConfig, name, prev, role)
		}
		seen[name] = role
		return nil
	}
	if err := check("latch", cfg.Pins.Latch); err != nil {
		return err
	}
	if err := check("clock", cfg.Pins.Clock); err != nil {
		return err
	}
	if err := check("data", cfg.Pins.Data); err != nil {
		return err
	}
	for i, name := range cfg.Pins.Digits {
		if err := check(fmt.Sprintf("digit %d", i+1), name); err != nil {
			return err
		}
	}

	if cfg.Serial.Device != "" && cfg.Serial.Baud <= 0 {
		return fmt.Errorf("%w: serial baud must be positive", ErrInvalidConfig)
	}
	return nil
}
