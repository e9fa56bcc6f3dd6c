// Package config loads Jade's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/jade/config.toml
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but fields are missing or blank, use defaults for those fields
//
// # TOML Format
//
//	capacity = 32          # log panel history, must be positive
//	tick_ms = 500          # heartbeat interval
//	title = "Jade"         # frame title
//	logs_only = false      # show only the log panel
//	debug_log = ""         # file for diagnostic output, empty disables it
//
// # Capacity
//
// A capacity that is absent falls back to 32. A capacity written explicitly as
// zero or below is kept so that Validate can reject it with
// ringbuf.ErrInvalidCapacity; a misconfigured log buffer cannot be repaired,
// so startup fails instead of silently picking another size.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
