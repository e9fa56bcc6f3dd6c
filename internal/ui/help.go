package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelp returns a help model styled for the theme.
func newHelp(styles Styles) help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.SuccessText
	h.Styles.ShortDesc = styles.Text
	h.Styles.ShortSeparator = styles.FaintText
	h.Styles.FullKey = styles.WarningText
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText
	h.Styles.Ellipsis = styles.FaintText
	return h
}

// renderFooter renders the short help shown in the frame's bottom border.
func (m Model) renderFooter() string {
	return " " + m.help.ShortHelpView(m.keys.ShortHelp()) + " "
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
