package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jade/internal/config"
	"github.com/five82/jade/internal/logs"
	"github.com/five82/jade/internal/prefs"
	"github.com/five82/jade/internal/ui"
)

// Options configure the Jade application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/jade/prefs.toml
	Capacity   *int   // nil keeps the configured capacity
	TickMillis int    // zero keeps the configured interval
	LogsOnly   bool
}

// Run boots the Jade TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	entries, err := logs.WithCapacity(cfg.Capacity)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("load prefs: %v", err)
		entries.Warnf("Using default preferences: %v", err)
	}

	entries.Infof("Keeping the last %d messages", entries.Cap())

	feedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := make(chan logs.Message)
	StartFeeder(feedCtx, cfg.Tick, feed)

	uiOpts := ui.Options{
		Context:   ctx,
		Logs:      entries,
		Feed:      feed,
		Title:     cfg.Title,
		LogsOnly:  cfg.LogsOnly,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// applyOverrides layers command line options over the loaded config.
func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.Capacity != nil {
		cfg.Capacity = *opts.Capacity
	}
	if opts.TickMillis > 0 {
		cfg.Tick = time.Duration(opts.TickMillis) * time.Millisecond
	}
	if opts.LogsOnly {
		cfg.LogsOnly = true
	}
	return cfg
}

// setupLogging routes the standard logger away from the terminal while the
// TUI owns it: to the debug log file when one is configured, otherwise
// nowhere.
func setupLogging(path string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "jade")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f.Close, nil
}
