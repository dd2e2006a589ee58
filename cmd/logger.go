package cmd

import (
	"io"
	"strings"
	"time"

	"pizzabot/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger. format is "console" for human readable output
// or "json".
func NewLogger(out io.Writer, level string, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	switch strings.ToLower(format) {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Nop(), errs.NewValueIsInvalidError("LOG_FORMAT")
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
