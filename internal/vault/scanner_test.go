package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modulated/obsidian-format-check/internal/note"
)

func writeFile(t *testing.T, root string, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScan_FindsNotes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "inbox.md", "x")
	writeFile(t, root, filepath.Join("daily", "2026-01-15.md"), "x")
	writeFile(t, root, filepath.Join("projects", "alpha", "plan.md"), "x")
	writeFile(t, root, "README.txt", "not a note")

	paths, err := Scan(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 notes, got %d: %v", len(paths), paths)
	}
}

func TestScan_SkipsHiddenAndJunkDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "note.md", "x")
	writeFile(t, root, filepath.Join(".obsidian", "workspace.md"), "x")
	writeFile(t, root, filepath.Join(".trash", "deleted.md"), "x")
	writeFile(t, root, filepath.Join("node_modules", "pkg", "doc.md"), "x")

	paths, err := Scan(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 note, got %d: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "note.md" {
		t.Errorf("unexpected note: %v", paths[0])
	}
}

func TestScan_SkipsHiddenFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".hidden.md", "x")
	writeFile(t, root, "visible.md", "x")

	paths, err := Scan(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 note, got %d: %v", len(paths), paths)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	paths, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected empty scan, got %v", paths)
	}
}

func TestLoadNotes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, filepath.Join("daily", "a.md"), `---
modified: "2026-01-15 09:30"
formatted: "2026-01-14 18:00"
---
`)
	writeFile(t, root, "b.md", "no frontmatter\n")

	notes := LoadNotes(root, note.FieldNames{Modified: "modified", Formatted: "formatted"})
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}

	byRel := make(map[string]note.Note)
	for _, n := range notes {
		byRel[n.RelPath] = n
	}

	if byRel["daily/a.md"].Modified.IsZero() {
		t.Error("expected daily/a.md to have a modified timestamp")
	}
	if !byRel["b.md"].Formatted.IsZero() {
		t.Error("expected b.md to have no formatted timestamp")
	}
}
