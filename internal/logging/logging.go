// Package logging configures the structured logger used across the sanctuary.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w at the given level. A nil w
// writes to stderr so stdout stays reserved for demo output.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
