// Package logging builds the zerolog logger used by the command-line tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrBadFormat indicates an unknown log format name.
var ErrBadFormat = errors.New("logging: format must be auto, json or console")

// New returns a logger writing to out at the given level.
//
// format "json" writes one JSON object per event, "console" writes
// human-readable lines, and "auto" picks JSON inside Kubernetes and
// console output everywhere else.
func New(out io.Writer, format, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: %w", err)
	}

	var output io.Writer
	switch strings.ToLower(format) {
	case "json":
		output = out
	case "console":
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02T15:04:05.999Z07:00", NoColor: true}
	case "", "auto":
		if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
			output = out
		} else {
			output = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
		}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrBadFormat, format)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
