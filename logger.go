package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventLogger writes timestamped events to a file and to standard error.
// It is safe for concurrent use.
type EventLogger struct {
	log  *zap.SugaredLogger
	file *os.File
}

// NewEventLogger creates a logger appending to filePath.  An empty path logs
// to standard error only.
func NewEventLogger(filePath string) (*EventLogger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zap.NewAtomicLevelAt(zap.InfoLevel)

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}
	el := &EventLogger{}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		el.file = f
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level))
	}
	el.log = zap.New(zapcore.NewTee(cores...)).Sugar()
	return el, nil
}

// newEventLoggerWith wraps an existing zap logger.  Tests use it with an
// observer core.
func newEventLoggerWith(l *zap.Logger) *EventLogger {
	return &EventLogger{log: l.Sugar()}
}

// Log writes a single informational event.
func (el *EventLogger) Log(format string, args ...any) {
	el.log.Infof(format, args...)
}

// Event writes an informational event with structured fields.
func (el *EventLogger) Event(msg string, keysAndValues ...any) {
	el.log.Infow(msg, keysAndValues...)
}

// Error writes an error event with structured fields.
func (el *EventLogger) Error(msg string, keysAndValues ...any) {
	el.log.Errorw(msg, keysAndValues...)
}

// Close flushes buffered entries and closes the log file.
func (el *EventLogger) Close() error {
	// Sync on a terminal stderr returns EINVAL on Linux; it is not worth
	// reporting.
	_ = el.log.Sync()
	if el.file == nil {
		return nil
	}
	return multierr.Append(el.file.Sync(), el.file.Close())
}
