package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures logger construction.
type Option func(*options)

type options struct {
	writer io.Writer
	level  slog.Level
	json   bool
	attrs  []slog.Attr
}

// WithOutput directs log records to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithLevel sets the minimum record level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON switches output to JSON records, for log aggregation.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithAttrs attaches base attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New constructs a slog logger. Defaults: text records, info level, stdout.
func New(opts ...Option) *slog.Logger {
	o := options{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.writer, ho)
	} else {
		h = slog.NewTextHandler(o.writer, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record. Used as the default in
// components where logging is optional.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
