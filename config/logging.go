package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the text logger used by the CLI. verbose forces debug.
func NewLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
