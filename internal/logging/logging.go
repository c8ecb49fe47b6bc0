// Package logging constructs the zerolog loggers used across donorlens.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for interactive use.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	logger := New(w, level)
	return logger.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
}

// Nop returns a disabled logger for callers that want silence.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
