// Package app provides the orchestration layer for the Jade application.
//
// # Overview
//
// This package wires together configuration, preferences, the bounded log
// history, the heartbeat feeder and the UI. It is the composition root where
// all dependencies are initialized and connected.
//
// # Components
//
//   - app.go: Main Run function, flag overrides and debug log setup
//   - feeder.go: Background goroutine that produces heartbeat messages
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config.toml
//	       ├─────> cfg.Validate()      Reject a non-positive capacity
//	       ├─────> logs.WithCapacity() Bounded log history
//	       ├─────> prefs.Load()        Saved theme
//	       ├─────> StartFeeder()       Launch heartbeat producer
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Feeder Loop:
//	┌─────────────────────────────────────────┐
//	│ StartFeeder() goroutine                 │
//	│  ├─> send "Heartbeat, n" on the feed    │
//	│  └─> wait for the next tick             │
//	│      └─> UI appends it to Logs          │
//	└─────────────────────────────────────────┘
//
// The UI model is the only owner of Logs. The feeder never touches it
// directly; it hands messages over the channel, which the UI drains.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - Capacity of zero or less (wraps ringbuf.ErrInvalidCapacity)
//   - Debug log file cannot be opened
//
// Recoverable errors (logged, Jade keeps running):
//   - Preferences file unreadable or invalid
//   - Saving preferences after a theme change
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{TickMillis: 250}); err != nil {
//		log.Fatalf("jade failed: %v", err)
//	}
package app
