package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/jade/internal/logs"
	"github.com/five82/jade/internal/prefs"
	"github.com/five82/jade/internal/screen"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Logs      *logs.Logs
	Feed      <-chan logs.Message // optional background producer
	Title     string
	LogsOnly  bool
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. It is the single
// owner of Logs: producers on other goroutines reach it only through Feed.
type Model struct {
	// Configuration
	ctx       context.Context
	feed      <-chan logs.Message
	prefsPath string
	title     string
	logsOnly  bool

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	layout   layout
	showHelp bool

	// Log state
	logs        *logs.Logs
	logViewport viewport.Model
	follow      bool

	// Screen state
	frame       *screen.Frame
	screenCache screenCache
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	entries := opts.Logs
	if entries == nil {
		entries = logs.New(nil)
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Jade"
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	return Model{
		ctx:       ctx,
		feed:      opts.Feed,
		prefsPath: prefsPath,
		title:     title,
		logsOnly:  opts.LogsOnly,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme.Styles()),
		logs:      entries,
		follow:    true,
		frame:     screen.Gradient(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForLog(m.feed)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case logMsg:
		m.logs.Append(logs.Message(msg))
		if m.ready {
			m.updateLogViewport()
		}
		return m, waitForLog(m.feed)

	case feedClosedMsg:
		m.feed = nil
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.tooSmall() {
		styles := m.theme.Styles()
		return styles.WarningText.Render(fmt.Sprintf("Terminal too small (%dx%d)", m.width, m.height))
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleResize recomputes the layout and records the new geometry.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height
	m.layout = splitLayout(width, height, m.logsOnly)
	m.help.Width = max(width-4, 0)

	if !m.ready {
		m.initLogViewport()
	}
	m.ready = true

	if m.tooSmall() {
		m.logs.Warnf("Terminal %dx%d is below the minimum %dx%d", width, height, MinWidth, MinHeight)
	} else if !m.logsOnly {
		m.updateScreenCache()
		m.logScreenMetrics()
	}
	m.updateLogViewport()
}

func (m Model) tooSmall() bool {
	return m.width < MinWidth || m.height < MinHeight
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		// Esc closes the help overlay before it quits.
		if m.showHelp && msg.String() == "esc" {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	}

	if m.showHelp {
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	return m.handleLogsKey(msg)
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.help = newHelp(m.theme.Styles())
	m.help.Width = max(m.width-4, 0)
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("save prefs: %v", err)
			m.logs.Errorf("Saving theme failed: %v", err)
		}
	}
	if m.ready {
		m.updateLogViewport()
	}
}

// renderMain renders the outer frame with its panels.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var panels []string
	if !m.logsOnly {
		panels = append(panels, m.renderScreen())
	}
	panels = append(panels, m.renderLogs())
	body := lipgloss.NewStyle().
		MarginTop(m.layout.Top).
		MarginLeft(m.layout.Left).
		Render(lipgloss.JoinVertical(lipgloss.Left, panels...))

	frame := box{
		Border: lipgloss.ThickBorder(),
		Style:  styles.FrameBorder,
		Title:  styles.Title.Render(" " + m.title + " "),
		Footer: m.renderFooter(),
		Center: true,
	}
	return frame.render(body, m.width, m.height)
}

// Messages

// logMsg carries one message from the background feed.
type logMsg logs.Message

// feedClosedMsg reports that the background feed has stopped.
type feedClosedMsg struct{}

// Commands

// waitForLog blocks on the feed and delivers the next message to Update.
func waitForLog(feed <-chan logs.Message) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-feed
		if !ok {
			return feedClosedMsg{}
		}
		return logMsg(msg)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
