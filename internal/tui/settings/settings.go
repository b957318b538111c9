package settings

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modulated/obsidian-format-check/internal/config"
	"github.com/modulated/obsidian-format-check/internal/tui/messages"
)

const (
	fieldColor = iota
	fieldFolders
	fieldModified
	fieldFormatted
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(1, 2)
)

var labels = [fieldCount]string{
	"Indicator color",
	"Included folders",
	"Modified field",
	"Formatted field",
}

var hints = [fieldCount]string{
	"any lipgloss color, e.g. #e06c75 or 3",
	"comma-separated folder prefixes, empty = whole vault",
	"frontmatter field holding the modified timestamp",
	"frontmatter field holding the formatted timestamp",
}

// Model is the settings editor: four inputs matching the settings record.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  int
	width  int
	height int
}

// New creates the settings view pre-filled from the current configuration.
func New(cfg *config.Config) Model {
	var m Model
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 48
		m.inputs[i] = ti
	}

	m.inputs[fieldColor].SetValue(cfg.IndicatorColor)
	m.inputs[fieldFolders].SetValue(strings.Join(cfg.IncludedFolders, ", "))
	m.inputs[fieldModified].SetValue(cfg.ModifiedField)
	m.inputs[fieldFormatted].SetValue(cfg.FormattedField)

	m.inputs[fieldColor].Focus()
	return m
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HintText returns the status bar hint.
func (m Model) HintText() string {
	return "tab:next field  enter:save  esc:cancel"
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles settings events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, messages.SwitchView(messages.ViewBrowser)

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil

		case "enter":
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) save() tea.Cmd {
	color := strings.TrimSpace(m.inputs[fieldColor].Value())
	if color == "" {
		color = config.DefaultIndicatorColor
	}
	modified := strings.TrimSpace(m.inputs[fieldModified].Value())
	if modified == "" {
		modified = config.DefaultModifiedField
	}
	formatted := strings.TrimSpace(m.inputs[fieldFormatted].Value())
	if formatted == "" {
		formatted = config.DefaultFormattedField
	}
	folders := config.ParseFolderList(m.inputs[fieldFolders].Value())

	return func() tea.Msg {
		return messages.ApplySettingsMsg{
			IndicatorColor:  color,
			IncludedFolders: folders,
			ModifiedField:   modified,
			FormattedField:  formatted,
		}
	}
}

func (m Model) View() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Settings"))
	lines = append(lines, "")

	for i := range m.inputs {
		lines = append(lines, labelStyle.Render(labels[i]))
		lines = append(lines, m.inputs[i].View())
		lines = append(lines, hintStyle.Render(hints[i]))
		lines = append(lines, "")
	}

	content := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	box := boxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
