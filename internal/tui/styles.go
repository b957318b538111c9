package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorMuted = lipgloss.Color("8")

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	// Help text
	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
