package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// palette holds the escape sequences used for one output; all empty when
// colour is off.
type palette struct {
	reset, dim, bold                  string
	debug, info, warn, errorLevelCode string
}

var (
	ansiPalette = palette{
		reset:          "\033[0m",
		dim:            "\033[2m",
		bold:           "\033[1m",
		debug:          "\033[36m",
		info:           "\033[32m",
		warn:           "\033[33m",
		errorLevelCode: "\033[31m",
	}
	plainPalette = palette{}
)

// TerminalHandler formats log records as human readable lines.
//
// Output format:
//
//	15:04:05.000 INF schema migrated tables=7
//
// Colour is used only when the writer is a terminal and NO_COLOR is unset.
type TerminalHandler struct {
	writer  io.Writer
	level   slog.Leveler
	palette palette
	attrs   []slog.Attr
	groups  []string
	mu      *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *TerminalHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	p := plainPalette
	if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
		p = ansiPalette
	}
	return &TerminalHandler{
		writer:  w,
		level:   level,
		palette: p,
		mu:      &sync.Mutex{},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats a log record and writes it as one line.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	p := h.palette
	var buf bytes.Buffer
	buf.Grow(256)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(p.dim + ts.Format("15:04:05.000") + p.reset + " ")

	color, label := p.level(r.Level)
	buf.WriteString(color + label + p.reset + " ")
	buf.WriteString(p.bold + r.Message + p.reset)

	for _, a := range h.attrs {
		p.appendAttr(&buf, a, h.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		p.appendAttr(&buf, a, h.groups)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new handler that also writes attrs on every line.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new handler that prefixes subsequent keys with name.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append(make([]string, 0, len(h.groups)+1), h.groups...), name)
	return &clone
}

func (p palette) level(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return p.debug, "DBG"
	case level < slog.LevelWarn:
		return p.info, "INF"
	case level < slog.LevelError:
		return p.warn, "WRN"
	default:
		return p.errorLevelCode, "ERR"
	}
}

func (p palette) appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append(make([]string, 0, len(groups)+1), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			p.appendAttr(buf, ga, prefix)
		}
		return
	}

	buf.WriteString(" " + p.dim)
	for _, g := range groups {
		buf.WriteString(g + ".")
	}
	buf.WriteString(a.Key + "=" + p.reset)
	buf.WriteString(formatAttrValue(a.Value))
}

func formatAttrValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"\\=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	if v.Kind() == slog.KindDuration {
		return v.Duration().Round(time.Microsecond).String()
	}
	return v.String()
}
