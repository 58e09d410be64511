// Package logger constructs slog loggers and provides attribute helpers for
// the log records this module emits. Helpers return an empty Attr for nil or
// empty input, so call sites never need a nil check.
package logger
