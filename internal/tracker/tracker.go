// Package tracker maintains the working set of note paths that need
// formatting: notes whose modified timestamp is newer than their
// formatted timestamp, limited to the configured folder scope.
package tracker

import (
	"sort"
	"strings"
	"time"

	"github.com/modulated/obsidian-format-check/internal/note"
)

// NeedsFormatting reports whether a note with the given timestamps needs
// formatting: true when the formatted timestamp is absent, or when both are
// present and formatted precedes modified. A zero time means absent.
func NeedsFormatting(formatted, modified time.Time) bool {
	if formatted.IsZero() {
		return true
	}
	if modified.IsZero() {
		return false
	}
	return formatted.Before(modified)
}

// InScope reports whether a vault-relative path falls under any of the
// configured folder prefixes. An empty list means the whole vault.
func InScope(relPath string, folders []string) bool {
	if len(folders) == 0 {
		return true
	}
	for _, folder := range folders {
		folder = strings.TrimSuffix(strings.TrimSpace(folder), "/")
		if folder == "" {
			continue
		}
		if strings.HasPrefix(relPath, folder+"/") {
			return true
		}
	}
	return false
}

// Tracker owns the tracked-path set. It is not safe for concurrent use;
// all mutation happens on the TUI event loop (or a single CLI invocation).
type Tracker struct {
	folders []string
	flagged map[string]struct{}
}

// New creates a tracker scoped to the given folder prefixes.
func New(folders []string) *Tracker {
	return &Tracker{
		folders: folders,
		flagged: make(map[string]struct{}),
	}
}

// Rebuild replaces the whole set from a fresh vault scan.
func (t *Tracker) Rebuild(notes []note.Note) {
	t.flagged = make(map[string]struct{}, len(notes))
	for _, n := range notes {
		t.Observe(n)
	}
}

// Observe updates membership for a single note and reports whether it
// changed. This is the only insertion point, so the set never holds an
// out-of-scope path or one whose formatted timestamp is current.
func (t *Tracker) Observe(n note.Note) bool {
	needed := InScope(n.RelPath, t.folders) && NeedsFormatting(n.Formatted, n.Modified)
	_, present := t.flagged[n.RelPath]
	if needed == present {
		return false
	}
	if needed {
		t.flagged[n.RelPath] = struct{}{}
	} else {
		delete(t.flagged, n.RelPath)
	}
	return true
}

// Forget drops a path, e.g. after the file was deleted.
func (t *Tracker) Forget(relPath string) {
	delete(t.flagged, relPath)
}

// Rename moves membership from an old path to the note's current one.
func (t *Tracker) Rename(oldRelPath string, n note.Note) {
	t.Forget(oldRelPath)
	t.Observe(n)
}

// Contains reports whether a path is currently flagged.
func (t *Tracker) Contains(relPath string) bool {
	_, ok := t.flagged[relPath]
	return ok
}

// Flagged returns the tracked paths in sorted order.
func (t *Tracker) Flagged() []string {
	paths := make([]string, 0, len(t.flagged))
	for p := range t.flagged {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of tracked paths.
func (t *Tracker) Len() int {
	return len(t.flagged)
}
