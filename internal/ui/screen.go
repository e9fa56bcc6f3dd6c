package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// screenCache keeps the painted frame for one panel size; the frame is
// static, so it only needs repainting on resize.
type screenCache struct {
	width   int
	height  int
	content string
}

// updateScreenCache repaints the frame if the screen panel changed size.
func (m *Model) updateScreenCache() {
	w, h := m.layout.Screen.inner()
	if m.screenCache.content != "" && m.screenCache.width == w && m.screenCache.height == h {
		return
	}
	m.screenCache = screenCache{width: w, height: h, content: m.frame.Render(w, h)}
}

// renderScreen renders the bordered screen panel.
func (m Model) renderScreen() string {
	styles := m.theme.Styles()
	panel := box{
		Border: lipgloss.RoundedBorder(),
		Style:  styles.Border,
		Title:  styles.PanelTitle.Render(" Screen "),
	}
	return panel.render(m.screenCache.content, m.layout.Screen.Width, m.layout.Screen.Height)
}

// logScreenMetrics records the screen panel geometry in the log panel. The
// panel's top left corner sits inside the outer frame border and the margins.
func (m *Model) logScreenMetrics() {
	x, y := 1+m.layout.Left, 1+m.layout.Top
	p := m.layout.Screen
	m.logs.Infof("Screen space area %d, width %d, height %d", p.area(), p.Width, p.Height)
	m.logs.Infof("Screen size %dx%d, x %d, y %d", p.Width, p.Height, x, y)
	m.logs.Infof("Area %d, center_x %d, center_y %d", p.area(), x+p.Width/2, y+p.Height/2)
}
