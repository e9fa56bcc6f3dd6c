package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Terminal size below which the frame is not drawn.
const (
	MinWidth  = 20
	MinHeight = 10
)

// Share of the frame interior given to each panel, in percent. Whatever the
// panels leave over becomes margin, at least one cell on every side.
const (
	screenPercent = 78
	logsPercent   = 20
	panelPercent  = 98
)

// minLogsHeight keeps one visible row inside the log panel's borders.
const minLogsHeight = 3

// pane is the outer size of a bordered panel, borders included.
type pane struct {
	Width  int
	Height int
}

// inner returns the size available for content inside the pane's borders.
func (p pane) inner() (int, int) {
	return max(p.Width-2, 0), max(p.Height-2, 0)
}

// area returns the number of cells the pane covers.
func (p pane) area() int {
	return p.Width * p.Height
}

// layout holds the computed panels for a terminal size. Left and Top are the
// margins between the frame border and the panels.
type layout struct {
	Left   int
	Top    int
	Screen pane
	Logs   pane
}

// splitLayout divides a width x height frame. The outer border takes one cell
// on each side. Inside it the panels are stacked with a one cell margin all
// around: the screen gets 78% of the interior height, the logs 20%, and both
// are 98% of the interior width. In logs-only mode the log panel takes the
// whole space between the margins.
func splitLayout(width, height int, logsOnly bool) layout {
	innerW := max(width-2, 0)
	innerH := max(height-2, 0)
	usableW := max(innerW-2, 0)
	usableH := max(innerH-2, 0)

	l := layout{Left: 1, Top: 1}
	panelW := min(innerW*panelPercent/100, usableW)

	if logsOnly {
		l.Logs = pane{Width: panelW, Height: usableH}
		return l
	}

	logsH := min(max(innerH*logsPercent/100, minLogsHeight), usableH)
	screenH := min(innerH*screenPercent/100, usableH-logsH)
	l.Screen = pane{Width: panelW, Height: screenH}
	l.Logs = pane{Width: panelW, Height: logsH}
	return l
}

// box describes a bordered panel. Title and Footer are pre-styled and are
// drawn into the top and bottom border.
type box struct {
	Border lipgloss.Border
	Style  lipgloss.Style // border color
	Title  string
	Footer string
	Center bool
}

// render draws body inside the box at exactly width x height cells. Body
// lines beyond the interior are dropped; short lines are padded.
func (b box) render(body string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW, innerH := width-2, height-2

	var lines []string
	if body != "" {
		lines = strings.Split(body, "\n")
	}

	var sb strings.Builder
	sb.WriteString(b.edge(b.Border.TopLeft, b.Border.Top, b.Border.TopRight, b.Title, innerW))
	sb.WriteString("\n")
	left := b.Style.Render(b.Border.Left)
	right := b.Style.Render(b.Border.Right)
	for i := range innerH {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		sb.WriteString(left)
		sb.WriteString(fitWidth(line, innerW))
		sb.WriteString(right)
		sb.WriteString("\n")
	}
	sb.WriteString(b.edge(b.Border.BottomLeft, b.Border.Bottom, b.Border.BottomRight, b.Footer, innerW))
	return sb.String()
}

// edge draws a horizontal border with an optional label.
func (b box) edge(left, fill, right, label string, innerW int) string {
	label = ansi.Truncate(label, innerW, "")
	labelW := lipgloss.Width(label)
	rest := innerW - labelW

	before := 0
	switch {
	case b.Center:
		before = rest / 2
	case labelW > 0:
		before = min(1, rest)
	}
	after := rest - before

	return b.Style.Render(left+strings.Repeat(fill, before)) +
		label +
		b.Style.Render(strings.Repeat(fill, after)+right)
}

// fitWidth truncates or pads s to exactly w display cells.
func fitWidth(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
