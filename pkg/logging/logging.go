package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// Setup configures the process-wide default logger once, at startup.
// Verbosity comes from the debug flag or the LOG_LEVEL environment variable.
// Output is a text handler on stderr, a JSON handler when jsonOut is set, or
// the systemd journal when stderr is already connected to it.
func Setup(debug, jsonOut bool) {
	level := slog.LevelInfo
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		level = parseLevel(s)
	}
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	switch {
	case jsonOut:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	case os.Getenv("JOURNAL_STREAM") != "" && journal.Enabled():
		handler = newJournalHandler(level)
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
