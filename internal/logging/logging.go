// Package logging builds the console logger used for diagnostics.
//
// All diagnostic output (corrupt-data warnings, doctor findings) goes
// through a charmbracelet/log logger writing to stderr; command
// confirmations stay on stdout as plain lines.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the console logger.
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // text, logfmt, json
	Timestamps bool
}

// DefaultOptions returns the default logger options.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		Format:     "text",
		Timestamps: false,
	}
}

// New creates a logger writing to stderr with the given options.
func New(opts Options) *log.Logger {
	return NewWithWriter(os.Stderr, opts)
}

// NewWithWriter creates a logger writing to w. Useful for tests.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormat(opts.Format),
		ReportTimestamp: opts.Timestamps,
		Prefix:          "tasktracker",
	})
}

// ParseLevel maps a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormat maps a format name to a formatter, defaulting to text.
func ParseFormat(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
