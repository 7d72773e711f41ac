package hxlink

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogOptions configures the logger used by elements and the registry.
type LogOptions struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// NewLogger builds a zerolog logger from opts. The default writes JSON at
// info level to stderr, so integration warnings are never swallowed.
func NewLogger(opts LogOptions) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	out := writer
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func defaultLogger() zerolog.Logger {
	l, _ := NewLogger(LogOptions{})
	return l
}
