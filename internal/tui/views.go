package tui

import "github.com/modulated/obsidian-format-check/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewBrowser  = messages.ViewBrowser
	ViewPreview  = messages.ViewPreview
	ViewSettings = messages.ViewSettings
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenNoteMsg = messages.OpenNoteMsg
type VaultChangedMsg = messages.VaultChangedMsg
type ApplySettingsMsg = messages.ApplySettingsMsg
