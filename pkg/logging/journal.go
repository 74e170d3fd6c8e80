package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// journalHandler is a slog.Handler that forwards records to the systemd
// journal, mapping slog levels to journal priorities and attributes to
// journal fields.
type journalHandler struct {
	level slog.Level
	attrs []slog.Attr
	group string
}

func newJournalHandler(level slog.Level) *journalHandler {
	return &journalHandler{level: level}
}

func (h *journalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *journalHandler) Handle(_ context.Context, r slog.Record) error {
	vars := make(map[string]string, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		vars[fieldName(h.group, a.Key)] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		vars[fieldName(h.group, a.Key)] = a.Value.String()
		return true
	})
	return journal.Send(r.Message, priority(r.Level), vars)
}

func (h *journalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &nh
}

func (h *journalHandler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group == "" {
		nh.group = name
	} else {
		nh.group = nh.group + "_" + name
	}
	return &nh
}

func priority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// fieldName maps an attribute key to a journal field name: uppercase, with
// anything outside [A-Z0-9_] replaced. Journal fields may not start with an
// underscore (those are trusted fields), so such keys get an "X" prefix.
func fieldName(group, key string) string {
	if group != "" {
		key = group + "_" + key
	}
	var b strings.Builder
	for _, c := range strings.ToUpper(key) {
		switch {
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" || name[0] == '_' {
		name = "X" + name
	}
	return name
}
