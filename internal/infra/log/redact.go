package logs

import (
	"context"
	"log/slog"
	"strings"
)

// Redacted replaces the value of every filtered attribute.
const Redacted = "***"

// PIIFields are the attribute keys never written in clear text.
var PIIFields = []string{"name", "email", "phone", "ssn", "password"}

// RedactingHandler masks the values of selected attribute keys before
// handing records to the wrapped handler. Keys match case-insensitively,
// at any depth inside groups.
type RedactingHandler struct {
	next   slog.Handler
	fields map[string]struct{}
}

func NewRedactingHandler(next slog.Handler, fields ...string) *RedactingHandler {
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[strings.ToLower(f)] = struct{}{}
	}

	return &RedactingHandler{next: next, fields: set}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	redacted := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.redact(a))
		return true
	})

	return h.next.Handle(ctx, redacted)
}

func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleaned := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		cleaned = append(cleaned, h.redact(a))
	}

	return &RedactingHandler{next: h.next.WithAttrs(cleaned), fields: h.fields}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name), fields: h.fields}
}

func (h *RedactingHandler) redact(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		cleaned := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			cleaned = append(cleaned, h.redact(ga))
		}

		return slog.Attr{Key: a.Key, Value: slog.GroupValue(cleaned...)}
	}

	if _, ok := h.fields[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, Redacted)
	}

	return a
}
