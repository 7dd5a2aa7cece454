package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// RawHandler outputs messages with key-value pairs in a simple format.
type RawHandler struct {
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
	prefix string
}

// NewRawHandler creates a new RawHandler.
func NewRawHandler(w io.Writer, opts *slog.HandlerOptions) *RawHandler {
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}
	return &RawHandler{writer: w, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *RawHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle outputs the log message followed by its key-value pairs.
func (h *RawHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, attr := range h.attrs {
		h.appendAttr(&b, attr, "")
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr, h.prefix)
		return true
	})
	_, err := fmt.Fprintln(h.writer, b.String())
	return err
}

func (h *RawHandler) appendAttr(b *strings.Builder, attr slog.Attr, prefix string) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	b.WriteString(" ")
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteString("=")
	b.WriteString(fmt.Sprintf("%v", attr.Value))
}

// WithAttrs returns a new handler with additional attributes, qualified by the
// groups opened so far.
func (h *RawHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, attr := range attrs {
		if attr.Equal(slog.Attr{}) {
			continue
		}
		attr.Key = h.prefix + attr.Key
		h2.attrs = append(h2.attrs, attr)
	}
	return &h2
}

// WithGroup returns a new handler with a group name prefixing subsequent keys.
func (h *RawHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}
