// Package ui provides the terminal user interface for Jade.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A single Model owns all state, including
// the bounded log history, and is only mutated from Update. Producers on
// other goroutines hand messages over through Options.Feed; the model drains
// that channel one message at a time with a tea.Cmd.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key dispatch and the Run entry point
//   - layout.go: Frame geometry and the bordered box renderer
//   - screen.go: The screen panel and its geometry metrics
//   - logs.go: The log panel, its viewport and follow mode
//   - help.go: Footer short help and the help overlay
//   - keys.go: Key bindings
//   - theme.go: Color themes and derived styles
//
// # Layout
//
// The outer frame fills the terminal and carries the title in its top
// border and short help in its bottom border. Inside it the screen panel
// takes most of the height and the log panel the rest. In logs-only mode the
// log panel fills the frame.
//
// # Key Bindings
//
//   - q, Esc or Ctrl+C: Quit (Esc closes help first)
//   - ?: Toggle help
//   - T: Cycle theme
//   - j/k, Up/Down: Scroll the log panel
//   - g/G: Oldest message / newest message and follow
//   - PgUp/PgDn, Ctrl+U/Ctrl+D: Page through the log panel
//   - Space: Toggle follow
//
// # Usage Example
//
//	entries, err := logs.WithCapacity(32)
//	if err != nil {
//		return err
//	}
//	err = ui.Run(ui.Options{
//		Context: ctx,
//		Logs:    entries,
//		Feed:    feed,
//	})
package ui
