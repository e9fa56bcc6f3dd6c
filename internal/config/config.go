package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/jade/internal/ringbuf"
)

// Config captures the runtime settings for Jade.
type Config struct {
	Capacity int
	Tick     time.Duration
	Title    string
	LogsOnly bool
	DebugLog string
}

const (
	defaultConfigPath = "~/.config/jade/config.toml"
	defaultTickMillis = 500
	defaultTitle      = "Jade"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Capacity: ringbuf.DefaultCapacity,
		Tick:     defaultTickMillis * time.Millisecond,
		Title:    defaultTitle,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Capacity *int   `toml:"capacity"`
		TickMS   int    `toml:"tick_ms"`
		Title    string `toml:"title"`
		LogsOnly bool   `toml:"logs_only"`
		DebugLog string `toml:"debug_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// An explicit capacity is kept as written so Validate can reject it.
	if raw.Capacity != nil {
		cfg.Capacity = *raw.Capacity
	}
	if raw.TickMS > 0 {
		cfg.Tick = time.Duration(raw.TickMS) * time.Millisecond
	}
	if title := strings.TrimSpace(raw.Title); title != "" {
		cfg.Title = title
	}
	cfg.LogsOnly = raw.LogsOnly
	if debugLog := strings.TrimSpace(raw.DebugLog); debugLog != "" {
		cfg.DebugLog = mustExpand(debugLog)
	}

	return cfg, nil
}

// Validate reports settings the application cannot start with.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", c.Capacity, ringbuf.ErrInvalidCapacity)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
