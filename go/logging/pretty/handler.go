package pretty

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// Handler renders records as single colorized lines for interactive runs.
type Handler struct {
	opts Options
	goas []groupOrAttrs
	out  io.Writer
	mu   *sync.Mutex
}

// New instantiates a pretty handler writing to out.
func New(out io.Writer, opts *Options) *Handler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	return &Handler{
		out:  out,
		mu:   &sync.Mutex{},
		opts: *opts,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	buf := make([]byte, 0, 1024)
	buf = h.appendHeader(buf, r)
	for _, goa := range h.goas {
		if goa.group != "" {
			buf = fmt.Appendf(buf, " %s:", h.color(cyan, goa.group))
		}
		for _, attr := range goa.attrs {
			buf = h.appendAttr(buf, attr)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{attrs: attrs})
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

func (h *Handler) withGroupOrAttrs(goa groupOrAttrs) *Handler {
	h2 := *h
	h2.goas = make([]groupOrAttrs, len(h.goas)+1)
	copy(h2.goas, h.goas)
	h2.goas[len(h2.goas)-1] = goa
	return &h2
}

func (h *Handler) appendHeader(buf []byte, r slog.Record) []byte {
	if !r.Time.IsZero() {
		buf = fmt.Appendf(buf, "%s ", h.color(lightGray, r.Time.Format(h.opts.TimeFormat)))
	}
	buf = fmt.Appendf(buf, "%-7s", h.levelLabel(r.Level))
	buf = fmt.Appendf(buf, " %s", h.color(white, r.Message))
	if h.opts.AddSource && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		buf = fmt.Appendf(buf, " %s", h.color(darkGray, fmt.Sprintf("source: %s:%d", f.File, f.Line)))
	}
	return buf
}

func (h *Handler) appendAttr(buf []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return buf
		}
		buf = fmt.Appendf(buf, " %s:", h.color(lightMagenta, a.Key))
		for _, ga := range attrs {
			buf = h.appendAttr(buf, ga)
		}
	case slog.KindString:
		buf = fmt.Appendf(buf, " %s=%s", h.color(lightMagenta, a.Key), h.color(lightBlue, fmt.Sprintf("%q", a.Value.String())))
	case slog.KindBool:
		boolColor := lightRed
		if a.Value.Bool() {
			boolColor = lightGreen
		}
		buf = fmt.Appendf(buf, " %s=%s", h.color(lightMagenta, a.Key), h.color(boolColor, a.Value.String()))
	case slog.KindTime:
		buf = fmt.Appendf(buf, " %s=%s", h.color(lightMagenta, a.Key), h.color(lightBlue, a.Value.Time().Format(h.opts.TimeFormat)))
	default:
		buf = fmt.Appendf(buf, " %s=%s", h.color(lightMagenta, a.Key), h.color(lightBlue, a.Value.String()))
	}
	return buf
}

func (h *Handler) color(colorCode int, v string) string {
	if !h.opts.Colorful {
		return v
	}
	return colorize(colorCode, v)
}

func (h *Handler) levelLabel(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return h.color(lightMagenta, "DEBUG")
	case slog.LevelInfo:
		return h.color(lightCyan, "INFO")
	case slog.LevelWarn:
		return h.color(lightYellow, "WARN")
	case slog.LevelError:
		return h.color(red, "ERROR")
	default:
		return level.String()
	}
}
