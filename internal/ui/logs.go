package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/jade/internal/logs"
)

// maxWrappedRows caps how many panel rows a single message may wrap onto.
const maxWrappedRows = 4

// initLogViewport initializes the log viewport.
func (m *Model) initLogViewport() {
	w, h := m.layout.Logs.inner()
	m.logViewport = viewport.New(w, h)
	m.logViewport.Style = lipgloss.NewStyle()
}

// updateLogViewport re-renders the log lines into the viewport. Called after
// every append, resize and theme change.
func (m *Model) updateLogViewport() {
	w, h := m.layout.Logs.inner()
	m.logViewport.Width = w
	m.logViewport.Height = h
	m.logViewport.SetContent(m.renderLogContent(w))

	if m.follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogContent renders every retained log line, oldest first.
func (m Model) renderLogContent(width int) string {
	styles := m.theme.Styles()
	lines := m.logs.RenderLines()
	if len(lines) == 0 {
		return styles.MutedText.Render("No log entries")
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, renderLogLine(line, styles, width))
	}
	return strings.Join(rendered, "\n")
}

// renderLogLine styles the level tag and wraps the line to width.
func renderLogLine(line logs.Line, styles Styles, width int) string {
	tag := line.Level.Tag()
	text := line.Text
	if width > 0 {
		if limit := width*maxWrappedRows - runewidth.StringWidth(tag); limit > 0 {
			text = runewidth.Truncate(text, limit, "…")
		}
	}

	content := styles.LevelStyle(line.Level).Render(tag) + styles.Text.Render(text)
	if width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// renderLogs renders the bordered log panel.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	panel := box{
		Border: lipgloss.RoundedBorder(),
		Style:  styles.Border,
		Title:  m.logTitle(styles),
	}
	return panel.render(m.logViewport.View(), m.layout.Logs.Width, m.layout.Logs.Height)
}

// logTitle returns the styled panel title, e.g. " Logs 12/32 ".
func (m Model) logTitle(styles Styles) string {
	title := styles.PanelTitle.Render(" Logs ")
	title += styles.FaintText.Render(fmt.Sprintf("%d/%d ", m.logs.Len(), m.logs.Cap()))
	if !m.follow {
		title += styles.WarningText.Render("paused ")
	}
	return title
}

// handleLogsKey processes scrolling keys for the log panel.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.logViewport.GotoBottom()
		}

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.follow = false

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.follow = true

	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		m.follow = m.logViewport.AtBottom()

	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
		m.follow = false

	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
		m.follow = m.logViewport.AtBottom()

	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
		m.follow = false

	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
		m.follow = m.logViewport.AtBottom()

	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
		m.follow = false
	}

	return m, nil
}
