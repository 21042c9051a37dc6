package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/yos-x/weardict/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewHandler_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"})).Info("hello", slog.String("adapter", "youdao"))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json format should produce valid JSON: %v", err)
	}
	if m["adapter"] != "youdao" {
		t.Errorf("adapter = %v, want youdao", m["adapter"])
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source")
	}
}

func TestNewHandler_TextFormatAddsSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "TEXT"})).Info("hello")

	if !strings.Contains(buf.String(), "source=") {
		t.Errorf("text format should include source, got %q", buf.String())
	}
}

func TestNewHandler_PrettyFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "pretty"})).Info("lookup succeeded", slog.String("query", "hello"))

	out := buf.String()
	if !strings.Contains(out, "lookup succeeded") || !strings.Contains(out, "hello") {
		t.Errorf("unexpected pretty output %q", out)
	}
	if json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Error("pretty format should not be JSON")
	}
}

func TestNewHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" Warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		for _, format := range []string{"json", "text", "pretty"} {
			t.Run(format+"_level_"+tt.level, func(t *testing.T) {
				var buf bytes.Buffer
				logger := slog.New(newHandler(&buf, config.LogConfig{Level: tt.level, Format: format}))

				logger.Log(context.TODO(), tt.wantSlog, "should appear")
				if buf.Len() == 0 {
					t.Errorf("expected log output at level %v", tt.wantSlog)
				}

				buf.Reset()
				logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
				if buf.Len() != 0 {
					t.Errorf("level %v should suppress level %v, got %s", tt.wantSlog, tt.wantSlog-1, buf.String())
				}
			})
		}
	}
}
