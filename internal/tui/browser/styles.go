package browser

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	countStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	listItemStyle         = lipgloss.NewStyle()
	selectedListItemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	noteTitleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	filterIndicatorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	emptyStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// markerStyleFor builds the flagged-note marker style from the configured
// indicator color.
func markerStyleFor(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}
