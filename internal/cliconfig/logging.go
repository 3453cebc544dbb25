package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger on w at the given level. Diagnostics
// go to stderr so they never mix with the roll report.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
