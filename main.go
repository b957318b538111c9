package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modulated/obsidian-format-check/internal/cli"
	"github.com/modulated/obsidian-format-check/internal/config"
	"github.com/modulated/obsidian-format-check/internal/logs"
	"github.com/modulated/obsidian-format-check/internal/note"
	"github.com/modulated/obsidian-format-check/internal/tracker"
	"github.com/modulated/obsidian-format-check/internal/tui"
	"github.com/modulated/obsidian-format-check/internal/vault"
	"github.com/modulated/obsidian-format-check/internal/watch"
)

func main() {
	// Parse CLI flags
	vaultFlag := flag.String("vault", "", "Vault root directory")
	flag.StringVar(vaultFlag, "v", "", "Vault root directory (shorthand)")
	foldersFlag := flag.String("folders", "", "Folder scope prefixes (comma-separated)")
	colorFlag := flag.String("color", "", "Indicator color")
	flag.Parse()

	cliFlags := config.CLIFlags{
		Vault:   *vaultFlag,
		Folders: config.ParseFolderList(*foldersFlag),
		Color:   *colorFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Logger writes into the config directory
	if configDir, err := config.Dir(); err == nil {
		if err := os.MkdirAll(configDir, 0755); err == nil {
			if err := logs.Initialize(configDir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
			}
		}
	}
	defer logs.Close()

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		os.Exit(cli.Run(args, cfg))
	}

	// TUI mode
	logs.Logger.Printf("Starting TUI for vault %s", cfg.Vault)

	fields := note.FieldNames{
		Modified:  cfg.ModifiedField,
		Formatted: cfg.FormattedField,
	}
	notes := vault.LoadNotes(cfg.Vault, fields)
	trk := tracker.New(cfg.IncludedFolders)
	trk.Rebuild(notes)

	appModel := tui.NewAppModel(cfg, notes, trk)
	p := tea.NewProgram(appModel, tea.WithAltScreen())

	// Forward debounced vault changes into the TUI event loop
	watcher, err := watch.New(cfg.Vault, watch.DefaultDebounce, func() {
		p.Send(tui.VaultChangedMsg{})
	})
	if err != nil {
		logs.Logger.Printf("Warning: could not watch vault: %v", err)
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
