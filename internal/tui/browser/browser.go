package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/modulated/obsidian-format-check/internal/note"
	"github.com/modulated/obsidian-format-check/internal/tracker"
	"github.com/modulated/obsidian-format-check/internal/tui/messages"
)

type browserMode int

const (
	modeList browserMode = iota
	modeSearch
)

// Model is the vault file browser: every in-scope note, with flagged ones
// carrying a colored marker.
type Model struct {
	notes       []note.Note
	trk         *tracker.Tracker
	filtered    []int // indices into notes
	selected    int
	mode        browserMode
	textInput   textinput.Model
	searchQuery string
	flaggedOnly bool
	markerStyle lipgloss.Style
	width       int
	height      int
}

// New creates the browser view over the current vault snapshot.
func New(notes []note.Note, trk *tracker.Tracker, indicatorColor string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.CharLimit = 80
	ti.Width = 40

	m := Model{
		notes:       notes,
		trk:         trk,
		textInput:   ti,
		markerStyle: markerStyleFor(indicatorColor),
	}
	m.applyFilter()
	return m
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the vault snapshot after a rescan.
func (m *Model) SetData(notes []note.Note, trk *tracker.Tracker) {
	m.notes = notes
	m.trk = trk
	m.applyFilter()
}

// SetIndicatorColor rebuilds the marker style from a new color.
func (m *Model) SetIndicatorColor(color string) {
	m.markerStyle = markerStyleFor(color)
}

// IsTyping returns true while the search input is active
func (m Model) IsTyping() bool {
	return m.mode == modeSearch
}

// SelectedNote returns the note under the cursor, if any.
func (m Model) SelectedNote() (note.Note, bool) {
	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return note.Note{}, false
	}
	return m.notes[m.filtered[m.selected]], true
}

// HintText returns the status bar hint for the current mode.
func (m Model) HintText() string {
	if m.mode == modeSearch {
		return "type to filter  enter:confirm  esc:cancel"
	}
	return "j/k:navigate  /:search  f:flagged only  enter:preview  r:rescan  s:settings  ?:help  q:quit"
}

func (m *Model) applyFilter() {
	m.filtered = filterNotes(m.notes, m.trk, m.flaggedOnly, m.searchQuery)
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// filterNotes narrows the note list to the flagged subset (when requested)
// and fuzzy-matches the search query against relative paths.
func filterNotes(notes []note.Note, trk *tracker.Tracker, flaggedOnly bool, query string) []int {
	var pool []int
	for i, n := range notes {
		if flaggedOnly && !trk.Contains(n.RelPath) {
			continue
		}
		pool = append(pool, i)
	}

	if query == "" {
		return pool
	}

	names := make([]string, len(pool))
	for j, i := range pool {
		names[j] = notes[i].RelPath
	}
	matches := fuzzy.Find(query, names)
	result := make([]int, len(matches))
	for j, match := range matches {
		result[j] = pool[match.Index]
	}
	return result
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles browser events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
		}
		return m, nil

	case "/":
		m.mode = modeSearch
		m.textInput.SetValue(m.searchQuery)
		m.textInput.Focus()
		return m, textinput.Blink

	case "f":
		m.flaggedOnly = !m.flaggedOnly
		m.applyFilter()
		return m, nil

	case "j", "down":
		if len(m.filtered) > 0 && m.selected < len(m.filtered)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "g":
		m.selected = 0

	case "G":
		m.selected = max(0, len(m.filtered)-1)

	case "enter":
		if n, ok := m.SelectedNote(); ok {
			return m, func() tea.Msg {
				return messages.OpenNoteMsg{RelPath: n.RelPath}
			}
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.applyFilter()
		return m, nil

	case "enter":
		m.searchQuery = m.textInput.Value()
		m.mode = modeList
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchQuery = m.textInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m Model) View() string {
	var lines []string

	header := titleStyle.Render("Format Check")
	counts := countStyle.Render(fmt.Sprintf("%d of %d notes need formatting", m.trk.Len(), len(m.notes)))
	lines = append(lines, header+"  "+counts)

	if m.mode == modeSearch {
		lines = append(lines, "  "+m.textInput.View())
	} else if m.searchQuery != "" || m.flaggedOnly {
		var parts []string
		if m.searchQuery != "" {
			parts = append(parts, "filter: "+m.searchQuery)
		}
		if m.flaggedOnly {
			parts = append(parts, "flagged only")
		}
		lines = append(lines, filterIndicatorStyle.Render("  "+strings.Join(parts, "  ")))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "")

	if len(m.filtered) == 0 {
		if len(m.notes) == 0 {
			lines = append(lines, emptyStyle.Render("  No notes found in this vault."))
		} else {
			lines = append(lines, emptyStyle.Render("  No matching notes."))
		}
		return strings.Join(lines, "\n")
	}

	headerLines := len(lines)
	visible := m.height - headerLines
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(m.filtered))

	for i := start; i < end; i++ {
		n := m.notes[m.filtered[i]]

		marker := "  "
		if m.trk.Contains(n.RelPath) {
			marker = m.markerStyle.Render("●") + " "
		}

		cursor := "  "
		style := listItemStyle
		if i == m.selected {
			cursor = "► "
			style = selectedListItemStyle
		}

		line := cursor + marker + style.Render(n.RelPath)
		if n.Title != "" && n.Title != strings.TrimSuffix(n.RelPath, ".md") {
			line += "  " + noteTitleStyle.Render(n.Title)
		}
		lines = append(lines, truncateLine(line, m.width))
	}

	return strings.Join(lines, "\n")
}

func truncateLine(line string, width int) string {
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
