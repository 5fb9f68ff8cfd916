package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/docforge/docforge/internal/config"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []config.LogFormat{config.LogFormatPretty, config.LogFormatJSON} {
		cfg := config.NewAppConfigWithOptions(
			config.WithLogLevel("INFO"),
			config.WithLogFormat(format),
		)

		logger := NewLogger(cfg)
		if logger == nil || logger.Slog() == nil {
			t.Fatalf("NewLogger(%s) returned an unusable logger", format)
		}
	}
}

func TestNewLogger_HandlerMatchesFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO").Handler().(*slog.JSONHandler); !ok {
		t.Error("json format should use slog.JSONHandler")
	}
	if _, ok := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO").Handler().(*TerminalHandler); !ok {
		t.Error("pretty format should use TerminalHandler")
	}
}

func TestLogger_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "DEBUG")

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 log lines, got %d", len(lines))
	}
	for i, line := range lines {
		var data map[string]any
		if err := json.Unmarshal([]byte(line), &data); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	logger.With("command", "migrate").Info("schema migrated")

	var data map[string]any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if data["command"] != "migrate" {
		t.Errorf("expected command=migrate, got %v", data["command"])
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	ctx := WithOrgID(WithRunID(context.Background(), "run-123"), "org-9")
	logger.InfoContext(ctx, "seeded")

	var data map[string]any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if data["run_id"] != "run-123" {
		t.Errorf("expected run_id=run-123, got %v", data["run_id"])
	}
	if data["org_id"] != "org-9" {
		t.Errorf("expected org_id=org-9, got %v", data["org_id"])
	}
}

func TestLogger_WithContext_NoContextValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	logger.InfoContext(context.Background(), "test message")

	var data map[string]any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if _, ok := data["run_id"]; ok {
		t.Error("should not have run_id when not set")
	}
	if _, ok := data["org_id"]; ok {
		t.Error("should not have org_id when not set")
	}
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	if RunID(ctx) != "" || OrgID(ctx) != "" {
		t.Error("ids should be empty when not set")
	}

	ctx = WithRunID(ctx, "r1")
	ctx = WithOrgID(ctx, "o1")
	if RunID(ctx) != "r1" {
		t.Errorf("RunID() = %v, want r1", RunID(ctx))
	}
	if OrgID(ctx) != "o1" {
		t.Errorf("OrgID() = %v, want o1", OrgID(ctx))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DEBUG", "DEBUG"},
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"WARN", "WARN"},
		{"WARNING", "WARN"},
		{"error", "ERROR"},
		{"unknown", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).String(); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "WARN")

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
}

func TestConfigure(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := config.NewAppConfigWithOptions(
		config.WithLogLevel("DEBUG"),
		config.WithLogFormat(config.LogFormatJSON),
	)

	logger := Configure(cfg)
	if logger == nil {
		t.Fatal("Configure() should not return nil")
	}
	if slog.Default() != logger.Slog() {
		t.Error("Configure() should install the logger as slog default")
	}
}
