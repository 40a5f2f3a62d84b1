package main

import (
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// serialWriteTimeout bounds writes so a disconnected adapter cannot stall
// the display loop.
const serialWriteTimeout = 500 * time.Millisecond

// Diagnostics is the serial channel kept open for debugging.  The display
// loop does not write to it; it only carries the start banner.
type Diagnostics struct {
	port io.WriteCloser
}

// OpenDiagnostics opens the configured serial device at 8N1.  It returns a
// nil *Diagnostics when no device is configured; all methods accept a nil
// receiver.
func OpenDiagnostics(cfg SerialConfig) (*Diagnostics, error) {
	if cfg.Device == "" {
		return nil, nil
	}
	port, err := serial.Open(&serial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.Baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  serialWriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", cfg.Device, err)
	}
	return &Diagnostics{port: port}, nil
}

// Printf writes a CRLF terminated line to the channel.
func (d *Diagnostics) Printf(format string, args ...any) error {
	if d == nil {
		return nil
	}
	_, err := fmt.Fprintf(d.port, format+"\r\n", args...)
	return err
}

// Close releases the serial port.
func (d *Diagnostics) Close() error {
	if d == nil {
		return nil
	}
	return d.port.Close()
}
