package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferPort stands in for an open serial port.
type bufferPort struct {
	bytes.Buffer
	closed bool
}

func (p *bufferPort) Close() error {
	p.closed = true
	return nil
}

func TestOpenDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SerialConfig
		wantErr string
	}{
		{"disabled without device", SerialConfig{Baud: 9600}, ""},
		{"missing device", SerialConfig{Device: filepath.Join(t.TempDir(), "ttyNONE"), Baud: 9600}, "open serial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := OpenDiagnostics(tt.cfg)
			assert.Nil(t, d)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), tt.cfg.Device)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, d.Printf("ignored %d", 1))
			assert.NoError(t, d.Close())
		})
	}
}

func TestDiagnosticsPrintfWritesCRLFLine(t *testing.T) {
	port := &bufferPort{}
	d := &Diagnostics{port: port}

	require.NoError(t, d.Printf("stopwatch: interval %s, base %d", "50ms", 10))
	require.NoError(t, d.Printf("second"))
	assert.Equal(t, "stopwatch: interval 50ms, base 10\r\nsecond\r\n", port.String())

	require.NoError(t, d.Close())
	assert.True(t, port.closed)
}
