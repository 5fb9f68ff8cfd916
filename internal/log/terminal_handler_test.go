package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTerminalHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	ts := time.Date(2026, 1, 15, 10, 30, 45, 123000000, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "schema migrated", 0)
	r.AddAttrs(slog.Int("tables", 7), slog.String("dialect", "sqlite"))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	want := "10:30:45.123 INF schema migrated tables=7 dialect=sqlite\n"
	if buf.String() != want {
		t.Errorf("Handle() wrote %q, want %q", buf.String(), want)
	}
}

func TestTerminalHandler_NoColourForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)

	slog.New(h).Error("fail")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no escape codes when writing to a buffer, got %q", buf.String())
	}
}

func TestTerminalHandler_ColourPalette(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)
	h.palette = ansiPalette

	r := slog.NewRecord(time.Now(), slog.LevelError, "fail", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, ansiPalette.errorLevelCode+"ERR") {
		t.Error("expected red colour for ERROR level")
	}
	if !strings.Contains(output, ansiPalette.bold+"fail") {
		t.Error("expected bold message")
	}
}

func TestTerminalHandler_Levels(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

			r := slog.NewRecord(time.Now(), tt.level, "msg", 0)
			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("expected %s in output, got: %s", tt.expected, buf.String())
			}
		})
	}
}

func TestTerminalHandler_Enabled(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("INFO should be disabled at WARN level")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("WARN should be enabled at WARN level")
	}
}

func TestTerminalHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, nil)
	logger := slog.New(h).With("run_id", "r1").WithGroup("db")

	logger.Info("query", "rows", 3)

	out := buf.String()
	if !strings.Contains(out, "run_id=r1") {
		t.Errorf("expected handler attribute, got: %s", out)
	}
	if !strings.Contains(out, "db.rows=3") {
		t.Errorf("expected grouped attribute, got: %s", out)
	}

	buf.Reset()
	slog.New(h).Info("plain")
	if strings.Contains(buf.String(), "run_id") {
		t.Error("WithAttrs must not modify the parent handler")
	}
}

func TestFormatAttrValue(t *testing.T) {
	tests := []struct {
		name string
		v    slog.Value
		want string
	}{
		{"plain", slog.StringValue("sqlite"), "sqlite"},
		{"spaces", slog.StringValue("a b"), `"a b"`},
		{"empty", slog.StringValue(""), `""`},
		{"equals", slog.StringValue("k=v"), `"k=v"`},
		{"int", slog.IntValue(42), "42"},
		{"duration", slog.DurationValue(1500 * time.Nanosecond), "2µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAttrValue(tt.v); got != tt.want {
				t.Errorf("formatAttrValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
