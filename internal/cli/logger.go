package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

// NewLogger builds the JSON logger. The game itself owns stdout, so logs go to w (stderr).
func NewLogger(w io.Writer, logLevel string) (*slog.Logger, error) {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogLevel, logLevel)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}
