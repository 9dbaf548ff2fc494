// Package logger sets up structured logging for the engine and keeps a
// small JSON dump helper for inspecting analysis output on disk.
package logger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a slog.Logger writing to stderr at the given level. format
// is "text" or "json"; anything else falls back to text.
func Setup(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DumpJSON writes data as indented JSON to dir/name.json. Debug aid for
// paradigms and analysis results; failures are returned, not fatal.
func DumpJSON(dir, name string, data any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fmt.Sprintf("%s/%s.json", dir, name), bytes, 0o644)
}
