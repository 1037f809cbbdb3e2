package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. Panics for invalid formats so
// misconfiguration fails at startup, not mid-run.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// New builds a logger. Defaults: info level, text format, stderr.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	ho := &slog.HandlerOptions{Level: c.level}
	var handler slog.Handler
	switch c.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(c.output, ho)
	default:
		handler = slog.NewTextHandler(c.output, ho)
	}
	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}
	return slog.New(handler)
}
