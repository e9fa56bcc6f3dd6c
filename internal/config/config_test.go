package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/jade/internal/ringbuf"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want %#v", cfg, Default())
	}
	if cfg.Capacity != ringbuf.DefaultCapacity {
		t.Fatalf("Capacity = %d, want %d", cfg.Capacity, ringbuf.DefaultCapacity)
	}
	if cfg.Tick != 500*time.Millisecond {
		t.Fatalf("Tick = %v, want 500ms", cfg.Tick)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
capacity = 20
tick_ms = 250
title = "  Asdrubalino  "
logs_only = true
debug_log = "  ~/jade-debug.log  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 20 {
		t.Fatalf("Capacity = %d, want 20", cfg.Capacity)
	}
	if cfg.Tick != 250*time.Millisecond {
		t.Fatalf("Tick = %v, want 250ms", cfg.Tick)
	}
	if cfg.Title != "Asdrubalino" {
		t.Fatalf("Title = %q, want %q", cfg.Title, "Asdrubalino")
	}
	if !cfg.LogsOnly {
		t.Fatalf("LogsOnly = false, want true")
	}
	if cfg.DebugLog != filepath.Join(home, "jade-debug.log") {
		t.Fatalf("DebugLog = %q, want it under HOME %q", cfg.DebugLog, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
tick_ms = -3
title = "   "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults %#v", cfg, Default())
	}
}

func TestLoad_ExplicitZeroCapacityFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("capacity = 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 0 {
		t.Fatalf("Capacity = %d, want 0 as written", cfg.Capacity)
	}
	if err := cfg.Validate(); !errors.Is(err, ringbuf.ErrInvalidCapacity) {
		t.Fatalf("Validate() = %v, want ErrInvalidCapacity", err)
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`capacity = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
