package preview

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modulated/obsidian-format-check/internal/note"
	"github.com/modulated/obsidian-format-check/internal/tui/messages"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	valueStyle  = lipgloss.NewStyle()
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 2)
)

// Model shows a single note's timestamps and formatting status.
type Model struct {
	note        note.Note
	flagged     bool
	markerStyle lipgloss.Style
	width       int
	height      int
}

func New() Model {
	return Model{}
}

// SetNote loads a note into the view.
func (m *Model) SetNote(n note.Note, flagged bool, indicatorColor string) {
	m.note = n
	m.flagged = flagged
	m.markerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(indicatorColor))
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HintText returns the status bar hint.
func (m Model) HintText() string {
	return "esc:back  q:quit"
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles preview events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "backspace":
			return m, messages.SwitchView(messages.ViewBrowser)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var lines []string

	lines = append(lines, titleStyle.Render(m.note.Title))
	lines = append(lines, pathStyle.Render(m.note.RelPath))
	lines = append(lines, "")

	status := okStyle.Render("up to date")
	if m.flagged {
		status = m.markerStyle.Render("● needs formatting")
	}
	lines = append(lines, labelStyle.Render("Status     ")+status)
	lines = append(lines, labelStyle.Render("Modified   ")+valueStyle.Render(formatTimestamp(m.note.Modified)))
	lines = append(lines, labelStyle.Render("Formatted  ")+valueStyle.Render(formatTimestamp(m.note.Formatted)))

	if m.note.Preview != "" {
		lines = append(lines, "")
		lines = append(lines, bodyStyle.Render(m.note.Preview))
	}

	box := borderStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "(none)"
	}
	return t.Format(note.TimestampLayout)
}
