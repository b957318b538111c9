package tracker

import (
	"testing"
	"time"

	"github.com/modulated/obsidian-format-check/internal/note"
)

func ts(s string) time.Time {
	t, err := time.Parse(note.TimestampLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNeedsFormatting(t *testing.T) {
	tests := []struct {
		name      string
		formatted time.Time
		modified  time.Time
		want      bool
	}{
		{"both absent", time.Time{}, time.Time{}, true},
		{"formatted absent", time.Time{}, ts("2026-01-15 09:30"), true},
		{"modified absent", ts("2026-01-15 09:30"), time.Time{}, false},
		{"formatted before modified", ts("2026-01-14 18:00"), ts("2026-01-15 09:30"), true},
		{"formatted after modified", ts("2026-01-15 09:30"), ts("2026-01-14 18:00"), false},
		{"equal timestamps", ts("2026-01-15 09:30"), ts("2026-01-15 09:30"), false},
	}

	for _, tt := range tests {
		if got := NeedsFormatting(tt.formatted, tt.modified); got != tt.want {
			t.Errorf("%s: NeedsFormatting = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInScope(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		folders []string
		want    bool
	}{
		{"empty scope matches everything", "anywhere/note.md", nil, true},
		{"direct child", "daily/note.md", []string{"daily"}, true},
		{"nested child", "daily/2026/note.md", []string{"daily"}, true},
		{"sibling prefix is not a match", "dailyarchive/note.md", []string{"daily"}, false},
		{"root file excluded by non-empty scope", "note.md", []string{"daily"}, false},
		{"second prefix matches", "projects/alpha/x.md", []string{"daily", "projects"}, true},
		{"trailing slash tolerated", "daily/note.md", []string{"daily/"}, true},
		{"deep prefix", "projects/alpha/x.md", []string{"projects/alpha"}, true},
		{"deep prefix mismatch", "projects/beta/x.md", []string{"projects/alpha"}, false},
	}

	for _, tt := range tests {
		if got := InScope(tt.relPath, tt.folders); got != tt.want {
			t.Errorf("%s: InScope(%q, %v) = %v, want %v", tt.name, tt.relPath, tt.folders, got, tt.want)
		}
	}
}

func TestTracker_Rebuild(t *testing.T) {
	trk := New(nil)
	trk.Rebuild([]note.Note{
		{RelPath: "stale.md", Modified: ts("2026-01-15 09:30"), Formatted: ts("2026-01-14 18:00")},
		{RelPath: "fresh.md", Modified: ts("2026-01-14 18:00"), Formatted: ts("2026-01-15 09:30")},
		{RelPath: "never.md", Modified: ts("2026-01-15 09:30")},
	})

	if trk.Len() != 2 {
		t.Fatalf("expected 2 flagged, got %d", trk.Len())
	}
	flagged := trk.Flagged()
	if flagged[0] != "never.md" || flagged[1] != "stale.md" {
		t.Errorf("unexpected flagged set: %v", flagged)
	}
	if trk.Contains("fresh.md") {
		t.Error("fresh.md should not be flagged")
	}
}

func TestTracker_ScopeInvariant(t *testing.T) {
	trk := New([]string{"daily"})
	trk.Rebuild([]note.Note{
		{RelPath: "daily/a.md"},            // in scope, no timestamps -> flagged
		{RelPath: "inbox/b.md"},            // out of scope despite absent formatted
		{RelPath: "dailyarchive/old/c.md"}, // prefix without separator, out of scope
	})

	if trk.Len() != 1 {
		t.Fatalf("expected 1 flagged, got %d: %v", trk.Len(), trk.Flagged())
	}
	if !trk.Contains("daily/a.md") {
		t.Error("expected daily/a.md to be flagged")
	}
}

func TestTracker_ObserveTransitions(t *testing.T) {
	trk := New(nil)

	stale := note.Note{RelPath: "n.md", Modified: ts("2026-01-15 09:30"), Formatted: ts("2026-01-14 18:00")}
	if !trk.Observe(stale) {
		t.Error("expected first observation to change the set")
	}
	if trk.Observe(stale) {
		t.Error("expected repeated observation to be a no-op")
	}

	// Reformatting the note clears the flag.
	fresh := stale
	fresh.Formatted = ts("2026-01-15 10:00")
	if !trk.Observe(fresh) {
		t.Error("expected reformatted note to change the set")
	}
	if trk.Contains("n.md") {
		t.Error("n.md should no longer be flagged")
	}
}

func TestTracker_ForgetAndRename(t *testing.T) {
	trk := New(nil)
	trk.Observe(note.Note{RelPath: "old.md"})
	if !trk.Contains("old.md") {
		t.Fatal("expected old.md flagged")
	}

	trk.Rename("old.md", note.Note{RelPath: "new.md"})
	if trk.Contains("old.md") {
		t.Error("old.md should be gone after rename")
	}
	if !trk.Contains("new.md") {
		t.Error("new.md should be flagged after rename")
	}

	trk.Forget("new.md")
	if trk.Len() != 0 {
		t.Errorf("expected empty set, got %v", trk.Flagged())
	}
}

func TestTracker_SpecExample(t *testing.T) {
	// {modified: "2026-01-15 09:30", formatted: "2026-01-14 18:00"} -> needs formatting
	if !NeedsFormatting(ts("2026-01-14 18:00"), ts("2026-01-15 09:30")) {
		t.Error("expected needs formatting = true")
	}
	// {modified: "2026-01-14 18:00", formatted: "2026-01-15 09:30"} -> up to date
	if NeedsFormatting(ts("2026-01-15 09:30"), ts("2026-01-14 18:00")) {
		t.Error("expected needs formatting = false")
	}
}
