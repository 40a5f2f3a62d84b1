package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// Entry point for the stopwatch.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("stopwatch: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		interval time.Duration
		showZero bool
	)
	cmd := &cobra.Command{
		Use:           "stopwatch",
		Short:         "Count on a multiplexed 4-digit 7-segment display",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgMgr := &ConfigManager{Path: cfgPath}
			if err := cfgMgr.Load(); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfgMgr.Override(func(c *Config) {
				if cmd.Flags().Changed("interval") {
					c.Interval = interval
				}
				if cmd.Flags().Changed("show-zero") {
					c.Display.ShowZero = showZero
				}
			})
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfgMgr.Get())
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "path to the YAML configuration file")
	cmd.Flags().DurationVar(&interval, "interval", 50*time.Millisecond, "time between counter increments")
	cmd.Flags().BoolVar(&showZero, "show-zero", false, "draw 0 instead of leaving the display blank")
	return cmd
}

// run validates cfg, brings up the hardware and blocks in the display loop
// until ctx is cancelled.
func run(ctx context.Context, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	logger, err := NewEventLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	if err := initGPIO(); err != nil {
		return fmt.Errorf("initialisation error: %w", err)
	}
	pins, err := openDisplayPins(cfg.Pins)
	if err != nil {
		return err
	}
	display, err := NewDisplay(pins, cfg.Display)
	if err != nil {
		return err
	}
	defer func() {
		if err := display.Close(); err != nil {
			logger.Error("closing display", "error", err)
		}
	}()

	// The display still runs when the UART is disabled in the board's
	// firmware config.
	diag, err := OpenDiagnostics(cfg.Serial)
	if err != nil {
		logger.Error("serial unavailable", "device", cfg.Serial.Device, "error", err)
	}
	defer diag.Close()
	if err := diag.Printf("stopwatch: interval %s, base %d", cfg.Interval, cfg.Display.Base); err != nil {
		logger.Error("serial banner", "error", err)
	}

	logger.Log("starting with interval %s on %s/%s/%s %v", cfg.Interval,
		cfg.Pins.Latch, cfg.Pins.Clock, cfg.Pins.Data, cfg.Pins.Digits)
	sw := NewStopwatch(NewCounter(cfg.Interval), display, newMonotonicClock(), logger)
	return sw.Run(ctx)
}
