package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	config := Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}

	InitLoggerWithWriter(config, &buf)
	Info("quest ranked", "quest", "MA4A", "total_pd", 1.25)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	expected := map[string]interface{}{
		"service":     "test-service",
		"version":     "1.0.0",
		"environment": "test",
		"msg":         "quest ranked",
		"level":       "INFO",
		"quest":       "MA4A",
		"total_pd":    1.25,
	}
	for k, want := range expected {
		if logEntry[k] != want {
			t.Errorf("Expected %s=%v, got %v", k, want, logEntry[k])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelInfo, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	if got := GetRequestID(ctx); got != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", got)
	}

	FromContext(ctx).Info("with id")
	if !strings.Contains(buf.String(), `"request_id":"test-req-123"`) {
		t.Errorf("Expected request_id attribute in %s", buf.String())
	}

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request id, got %q", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b || len(a) != 36 {
		t.Errorf("Expected two distinct UUIDs, got %q and %q", a, b)
	}
}

func TestConfigPresets(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		format    string
		level     slog.Level
		addSource bool
	}{
		{"default", DefaultConfig(), LogFormatText, slog.LevelInfo, false},
		{"production", ProductionConfig(), LogFormatJSON, slog.LevelInfo, false},
		{"development", DevelopmentConfig(), LogFormatText, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config.ServiceName != DefaultServiceName {
				t.Errorf("Expected service %s, got %s", DefaultServiceName, tt.config.ServiceName)
			}
			if tt.config.Format != tt.format {
				t.Errorf("Expected format %s, got %s", tt.format, tt.config.Format)
			}
			if tt.config.LogLevel() != tt.level {
				t.Errorf("Expected level %v, got %v", tt.level, tt.config.LogLevel())
			}
			if tt.config.AddSource != tt.addSource {
				t.Errorf("Expected AddSource=%v", tt.addSource)
			}
		})
	}
}
