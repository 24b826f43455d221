// Package logging builds the zerolog loggers used by the mincut CLI.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.InfoLevel

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty means DefaultLevel.
	Level string
	// JSON selects raw JSON lines instead of the console format.
	JSON bool
	// NoColor disables ANSI colors in the console format.
	NoColor bool
}

// New returns a logger writing to w at the configured level.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if !opts.JSON {
		out = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.NoColor = opts.NoColor
			cw.TimeFormat = time.TimeOnly
		})
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel parses a level name, case-insensitively. Empty means DefaultLevel.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}

	return level, nil
}
