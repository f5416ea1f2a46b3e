// Package logging builds the service's zerolog logger from configuration.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var ErrInvalidLogFormat = errors.New("invalid log format")

// New returns a logger writing to w at the given level. format is "json" for
// machine-readable output or "console" for a human-friendly one.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	switch strings.ToLower(format) {
	case "", "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %s", ErrInvalidLogFormat, format)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(w).
		Level(parsed).
		With().
		Timestamp().
		Str("service", "post-service").
		Logger(), nil
}
