package logging

import (
	"errors"
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
	path := filepath.Join(t.TempDir(), "menuconfig.log")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Info("should not be written")
	Sync()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("silent logger created %s", path)
	}
}

func TestInitialize_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "menuconfig.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	LogSave(".config", 2, nil)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Configuration saved") {
		t.Errorf("log file = %q, want it to contain the save entry", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogSchemaLoad("menu.conf", 50, 0, 3)
	LogSave(".config", 0, errors.New("read-only file system"))
	LogTransition("main", "disk")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("truncated schema logged at %v, want warn", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("failed save logged at %v, want error", entries[1].Level)
	}
	if entries[2].ContextMap()["to"] != "disk" {
		t.Errorf("transition fields = %v", entries[2].ContextMap())
	}
}
