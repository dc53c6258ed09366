package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger on stderr. Level names follow zerolog ("debug", "info", ...).
func New(level string) zerolog.Logger {
	return NewWriter(os.Stderr, level)
}

func NewWriter(w io.Writer, level string) zerolog.Logger {
	var lvl, err = zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
