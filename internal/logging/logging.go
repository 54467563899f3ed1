// Package logging builds the zerolog logger shared by the CLI and the MCP
// server. Logs always go to a caller-supplied writer, normally stderr, since
// stdout carries the MCP protocol.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Formats lists the accepted output formats.
var Formats = []string{"console", "json"}

// New returns a logger writing to w at the named level ("debug", "info",
// ...). format is "console" for human-readable output or "json".
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldInteger = true

	switch format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q, must be console or json", format)
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
