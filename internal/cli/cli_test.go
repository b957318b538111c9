package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modulated/obsidian-format-check/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	stale := `---
modified: "2026-01-15 09:30"
formatted: "2026-01-14 18:00"
---
`
	fresh := `---
modified: "2026-01-14 18:00"
formatted: "2026-01-15 09:30"
---
`
	os.MkdirAll(filepath.Join(root, "daily"), 0755)
	os.WriteFile(filepath.Join(root, "daily", "stale.md"), []byte(stale), 0644)
	os.WriteFile(filepath.Join(root, "daily", "fresh.md"), []byte(fresh), 0644)

	return &config.Config{
		Vault:          root,
		IndicatorColor: config.DefaultIndicatorColor,
		ModifiedField:  "modified",
		FormattedField: "formatted",
	}
}

func TestRun_CheckExitCodes(t *testing.T) {
	cfg := testConfig(t)

	if code := Run([]string{"check", "daily/stale.md"}, cfg); code != 1 {
		t.Errorf("expected exit 1 for stale note, got %d", code)
	}
	if code := Run([]string{"check", "daily/fresh.md"}, cfg); code != 0 {
		t.Errorf("expected exit 0 for fresh note, got %d", code)
	}
	if code := Run([]string{"check", "daily/missing.md"}, cfg); code != 2 {
		t.Errorf("expected exit 2 for missing note, got %d", code)
	}
	if code := Run([]string{"check"}, cfg); code != 2 {
		t.Errorf("expected exit 2 for missing argument, got %d", code)
	}
}

func TestRun_CheckRespectsScope(t *testing.T) {
	cfg := testConfig(t)
	cfg.IncludedFolders = []string{"journal"}

	// Stale but out of scope resolves to up to date.
	if code := Run([]string{"check", "daily/stale.md"}, cfg); code != 0 {
		t.Errorf("expected exit 0 for out-of-scope note, got %d", code)
	}
}

func TestRun_List(t *testing.T) {
	cfg := testConfig(t)

	if code := Run([]string{"list"}, cfg); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if code := Run([]string{"list", "--all"}, cfg); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if code := Run([]string{"list", "--bogus"}, cfg); code != 2 {
		t.Errorf("expected exit 2 for unknown flag, got %d", code)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	cfg := testConfig(t)
	if code := Run([]string{"frobnicate"}, cfg); code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
	if code := Run([]string{"help"}, cfg); code != 0 {
		t.Errorf("expected exit 0 for help, got %d", code)
	}
}
