// Package logger sets up structured logging for the CLI.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/arpahome/nustudy/internal/config"
)

// New builds a text logger writing to w at the configured level. Unknown
// levels fall back to warn so log noise never mixes into command output.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
