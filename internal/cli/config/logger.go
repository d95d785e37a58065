package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the CLI logger. Verbose enables debug-level text logging
// to w; otherwise warnings and errors only, keeping table output clean.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
