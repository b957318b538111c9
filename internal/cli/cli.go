package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modulated/obsidian-format-check/internal/config"
	"github.com/modulated/obsidian-format-check/internal/note"
	"github.com/modulated/obsidian-format-check/internal/tracker"
	"github.com/modulated/obsidian-format-check/internal/vault"
)

// Run executes a CLI subcommand and returns the process exit code.
func Run(args []string, cfg *config.Config) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return runList(cmdArgs, cfg)
	case "check", "c":
		return runCheck(cmdArgs, cfg)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 2
	}
}

func fieldNames(cfg *config.Config) note.FieldNames {
	return note.FieldNames{
		Modified:  cfg.ModifiedField,
		Formatted: cfg.FormattedField,
	}
}

func runList(args []string, cfg *config.Config) int {
	showAll := false
	for _, arg := range args {
		switch arg {
		case "--all", "-a":
			showAll = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown list flag: %s\n", arg)
			return 2
		}
	}

	notes := vault.LoadNotes(cfg.Vault, fieldNames(cfg))
	trk := tracker.New(cfg.IncludedFolders)
	trk.Rebuild(notes)

	if showAll {
		for _, n := range notes {
			if !tracker.InScope(n.RelPath, cfg.IncludedFolders) {
				continue
			}
			status := "up-to-date"
			if trk.Contains(n.RelPath) {
				status = "needs-format"
			}
			fmt.Printf("%-13s %s\n", status, n.RelPath)
		}
		return 0
	}

	for _, path := range trk.Flagged() {
		fmt.Println(path)
	}
	return 0
}

func runCheck(args []string, cfg *config.Config) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: fmtcheck check <path>")
		return 2
	}

	absRoot, err := filepath.Abs(cfg.Vault)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(absRoot, path)
	}

	n, ok := note.ParseNoteFile(path, absRoot, fieldNames(cfg))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s\n", args[0])
		return 2
	}

	if tracker.InScope(n.RelPath, cfg.IncludedFolders) && tracker.NeedsFormatting(n.Formatted, n.Modified) {
		fmt.Printf("needs formatting: %s\n", n.RelPath)
		return 1
	}

	fmt.Printf("up to date: %s\n", n.RelPath)
	return 0
}

func printUsage() {
	fmt.Println(`fmtcheck - flag vault notes whose modified timestamp is newer than their formatted timestamp

Usage: fmtcheck [flags] [command] [arguments]

Commands:
  list, ls    List notes that need formatting
              fmtcheck list           # flagged notes, one path per line
              fmtcheck list --all     # every in-scope note with a status column

  check, c    Check a single note
              fmtcheck check daily/2026-01-15.md
              Exit code 0: up to date, 1: needs formatting, 2: error

  help        Show this help message

Flags:
  -v, --vault <dir>      Vault root directory
      --folders <list>   Folder scope prefixes (comma-separated)
      --color <color>    Indicator color for the TUI

Running fmtcheck without a command launches the interactive TUI.`)
}
