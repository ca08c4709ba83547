package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger creates a logger writing to w according to logging settings.
// Settings rejected by Load fall back to warn level text output.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.logLevel()
	if err != nil {
		lvl = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if isJSON, _ := c.logJSON(); isJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

func (c Config) logLevel() (slog.Level, error) {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
}

func (c Config) logJSON() (bool, error) {
	switch strings.ToLower(c.Logging.Format) {
	case "json":
		return true, nil
	case "text", "":
		return false, nil
	default:
		return false, fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
}
