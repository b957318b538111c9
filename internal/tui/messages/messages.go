package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewBrowser ViewType = iota
	ViewPreview
	ViewSettings
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenNoteMsg requests opening a note in the preview view
type OpenNoteMsg struct {
	RelPath string
}

// VaultChangedMsg signals that the vault changed on disk and the tracked
// set should be rebuilt. Sent by the watcher (via Program.Send) and by
// views requesting a manual rescan.
type VaultChangedMsg struct{}

// ApplySettingsMsg carries edited settings out of the settings view
type ApplySettingsMsg struct {
	IndicatorColor  string
	IncludedFolders []string
	ModifiedField   string
	FormattedField  string
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
