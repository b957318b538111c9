package vault

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modulated/obsidian-format-check/internal/note"
)

// Scan recursively collects the markdown note paths under a vault root.
// A missing root yields an empty scan rather than an error.
func Scan(rootDir string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	var paths []string
	if err := walkVault(absRoot, &paths); err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

func walkVault(dir string, paths *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		absPath := filepath.Join(dir, name)

		if entry.IsDir() {
			if ShouldSkipDir(name) {
				continue
			}
			if err := walkVault(absPath, paths); err != nil {
				return err
			}
		} else if IsNoteFile(name) {
			*paths = append(*paths, absPath)
		}
	}

	return nil
}

// LoadNotes scans the vault and parses every note it finds. Unreadable
// files are skipped silently.
func LoadNotes(rootDir string, fields note.FieldNames) []note.Note {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil
	}

	paths, err := Scan(absRoot)
	if err != nil {
		return nil
	}

	var notes []note.Note
	for _, path := range paths {
		if n, ok := note.ParseNoteFile(path, absRoot, fields); ok {
			notes = append(notes, n)
		}
	}
	return notes
}

// IsNoteFile returns true for visible markdown files.
func IsNoteFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".md")
}

// ShouldSkipDir returns true for directories that should be skipped during
// scanning: hidden dirs (which covers .obsidian and .trash) and common junk.
func ShouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__", "target", "build", "dist":
		return true
	}
	return false
}
