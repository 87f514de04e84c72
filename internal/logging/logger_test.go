package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is set")
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.log")

	if err := Initialize("info", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	LogIntent("export", zap.String("path", "out.yaml"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "export") {
		t.Errorf("log file missing intent, got: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogCellEdit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogCellEdit(12, "priority", true)

	entries := logs.FilterMessage("Cell edited").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["row_id"] != int64(12) || fields["promoted"] != true {
		t.Errorf("fields = %v", fields)
	}
}
