// Package logger provides slog attribute helpers shared across the
// framework. All helpers return an empty slog.Attr for zero inputs, so they
// can be passed unconditionally.
package logger
