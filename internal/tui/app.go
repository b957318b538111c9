package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modulated/obsidian-format-check/internal/config"
	"github.com/modulated/obsidian-format-check/internal/logs"
	"github.com/modulated/obsidian-format-check/internal/note"
	"github.com/modulated/obsidian-format-check/internal/tracker"
	"github.com/modulated/obsidian-format-check/internal/tui/browser"
	"github.com/modulated/obsidian-format-check/internal/tui/preview"
	"github.com/modulated/obsidian-format-check/internal/tui/settings"
	"github.com/modulated/obsidian-format-check/internal/vault"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg          *config.Config
	notes        []note.Note
	trk          *tracker.Tracker
	currentView  ViewType
	browserView  browser.Model
	previewView  preview.Model
	settingsView settings.Model
	showHelp     bool
	width        int
	height       int
	ready        bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, notes []note.Note, trk *tracker.Tracker) AppModel {
	return AppModel{
		cfg:          cfg,
		notes:        notes,
		trk:          trk,
		currentView:  ViewBrowser,
		browserView:  browser.New(notes, trk, cfg.IndicatorColor),
		previewView:  preview.New(),
		settingsView: settings.New(cfg),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) fieldNames() note.FieldNames {
	return note.FieldNames{
		Modified:  m.cfg.ModifiedField,
		Formatted: m.cfg.FormattedField,
	}
}

// reload rescans the vault and rebuilds the tracked-path set.
func (m *AppModel) reload() {
	m.notes = vault.LoadNotes(m.cfg.Vault, m.fieldNames())
	m.trk = tracker.New(m.cfg.IncludedFolders)
	m.trk.Rebuild(m.notes)
	m.browserView.SetData(m.notes, m.trk)
	logs.Logger.Printf("vault rescan: %d notes, %d flagged", len(m.notes), m.trk.Len())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.browserView.SetSize(msg.Width, contentHeight)
		m.previewView.SetSize(msg.Width, contentHeight)
		m.settingsView.SetSize(msg.Width, contentHeight)
		return m, nil

	case VaultChangedMsg:
		m.reload()
		return m, nil

	case OpenNoteMsg:
		for _, n := range m.notes {
			if n.RelPath == msg.RelPath {
				m.previewView.SetNote(n, m.trk.Contains(n.RelPath), m.cfg.IndicatorColor)
				m.currentView = ViewPreview
				break
			}
		}
		return m, nil

	case ApplySettingsMsg:
		m.cfg.IndicatorColor = msg.IndicatorColor
		m.cfg.IncludedFolders = msg.IncludedFolders
		m.cfg.ModifiedField = msg.ModifiedField
		m.cfg.FormattedField = msg.FormattedField
		if err := config.Save(m.cfg); err != nil {
			logs.Logger.Printf("Error saving settings: %v", err)
		}
		m.browserView.SetIndicatorColor(msg.IndicatorColor)
		m.reload()
		m.currentView = ViewBrowser
		return m, nil

	case SwitchViewMsg:
		if msg.View == ViewSettings {
			m.settingsView = settings.New(m.cfg)
			m.settingsView.SetSize(m.width, m.height-3)
		}
		m.currentView = msg.View
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Settings view and active search own all keys.
		if m.currentView == ViewSettings || (m.currentView == ViewBrowser && m.browserView.IsTyping()) {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "s":
			m.settingsView = settings.New(m.cfg)
			m.settingsView.SetSize(m.width, m.height-3)
			m.currentView = ViewSettings
			return m, nil
		case "r":
			m.reload()
			return m, nil
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewBrowser:
		m.browserView, cmd = m.browserView.Update(msg)
		return m, cmd
	case ViewPreview:
		m.previewView, cmd = m.previewView.Update(msg)
		return m, cmd
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content, statusText string
	switch m.currentView {
	case ViewBrowser:
		content = m.browserView.View()
		statusText = m.browserView.HintText()
	case ViewPreview:
		content = m.previewView.View()
		statusText = m.previewView.HintText()
	case ViewSettings:
		content = m.settingsView.View()
		statusText = m.settingsView.HintText()
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	helpBoxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("4")).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	line := func(key, desc string) string {
		return "  " + keyStyle.Width(14).Render(key) + descStyle.Render(desc)
	}

	var content string
	content += sectionStyle.Render("Format Check - Keyboard Shortcuts") + "\n\n"

	content += sectionStyle.Render("Browser") + "\n"
	content += line("j / k", "Navigate notes") + "\n"
	content += line("g / G", "Jump to top / bottom") + "\n"
	content += line("/", "Fuzzy search") + "\n"
	content += line("f", "Toggle flagged-only") + "\n"
	content += line("enter", "Preview note") + "\n"
	content += line("r", "Rescan vault") + "\n"
	content += line("s", "Settings") + "\n\n"

	content += sectionStyle.Render("Settings") + "\n"
	content += line("tab", "Next field") + "\n"
	content += line("enter", "Save") + "\n"
	content += line("esc", "Cancel") + "\n\n"

	content += sectionStyle.Render("Global") + "\n"
	content += line("?", "Show this help") + "\n"
	content += line("q", "Quit") + "\n"
	content += line("ctrl+c", "Force quit") + "\n\n"

	content += HelpStyle.Render("Press any key to close")

	box := helpBoxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
