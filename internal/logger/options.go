package logger

import (
	"io"
	"log/slog"
)

// Option configures a logger created with New.
type Option func(*config)

type config struct {
	level  slog.Level
	json   bool
	writer io.Writer
}

// WithDebug lowers the log level to Debug when true. Maps to --verbose.
func WithDebug(debug bool) Option {
	return func(c *config) {
		if debug {
			c.level = slog.LevelDebug
		}
	}
}

// WithQuiet raises the log level to Warn when true, suppressing routine
// progress output. Maps to --quiet.
func WithQuiet(quiet bool) Option {
	return func(c *config) {
		if quiet {
			c.level = slog.LevelWarn
		}
	}
}

// WithJSON switches from the pretty CLI handler to slog's JSON handler for
// scripted or piped use.
func WithJSON(json bool) Option {
	return func(c *config) {
		c.json = json
	}
}

// WithWriter overrides the output writer. Defaults to os.Stderr so log
// output never mixes with the run summary on stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}
