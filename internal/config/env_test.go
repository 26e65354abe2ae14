package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("INVADERS_TEST_VALUE", "set")
	if got := GetEnv("INVADERS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("INVADERS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnv_EmptyIsSet(t *testing.T) {
	t.Setenv("INVADERS_TEST_EMPTY", "")
	if got := GetEnv("INVADERS_TEST_EMPTY", "fallback"); got != "" {
		t.Errorf("GetEnv = %q, want empty", got)
	}
}

func TestGetEnvInt64(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    int64
		wantErr bool
	}{
		{"unset", "", false, 7, false},
		{"empty", "", true, 7, false},
		{"number", "42", true, 42, false},
		{"negative", "-3", true, -3, false},
		{"garbage", "forty", true, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("INVADERS_TEST_INT", tt.value)
			} else {
				os.Unsetenv("INVADERS_TEST_INT")
			}
			got, err := GetEnvInt64("INVADERS_TEST_INT", 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}
	logger.Debug("formation drawn", "members", 2)
	if !strings.Contains(buf.String(), "formation drawn") {
		t.Errorf("debug line missing from %q", buf.String())
	}
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "chatty")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "")
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "chatty") {
		t.Errorf("expected a warning naming the level, got %q", buf.String())
	}
}

func TestOpenLogOutput(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	w, closeFn, err := OpenLogOutput()
	if err != nil {
		t.Fatalf("OpenLogOutput: %v", err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Errorf("discard write: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "game.log")
	t.Setenv(EnvLogFile, path)
	w, closeFn, err = OpenLogOutput()
	if err != nil {
		t.Fatalf("OpenLogOutput: %v", err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("file = %q", data)
	}
}
