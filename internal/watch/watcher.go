// Package watch notifies the application when the vault changes on disk,
// collapsing event bursts into one debounced refresh.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/modulated/obsidian-format-check/internal/logs"
	"github.com/modulated/obsidian-format-check/internal/vault"
)

// DefaultDebounce is the quiet period before a refresh fires.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a vault tree and invokes a callback after changes settle.
type Watcher struct {
	fsw  *fsnotify.Watcher
	deb  *Debouncer
	root string
}

// New starts watching the vault root and every non-skipped subdirectory.
// onChange runs on the watcher goroutine; callers typically forward into
// their own event loop (e.g. tea.Program.Send).
func New(root string, delay time.Duration, onChange func()) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:  fsw,
		deb:  NewDebouncer(delay, onChange),
		root: absRoot,
	}

	if err := w.addTree(absRoot); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher and clears any pending refresh.
func (w *Watcher) Close() error {
	w.deb.Stop()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logs.Logger.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if w.skipped(ev.Name) {
		return
	}

	// Newly created directories must be watched as well.
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if vault.ShouldSkipDir(filepath.Base(ev.Name)) {
				return
			}
			if err := w.addTree(ev.Name); err != nil {
				logs.Logger.Printf("watch add %s: %v", ev.Name, err)
			}
			w.deb.Trigger()
			return
		}
	}

	if vault.IsNoteFile(filepath.Base(ev.Name)) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.deb.Trigger()
	}
}

// skipped reports whether the path lies inside a directory the scanner
// would skip.
func (w *Watcher) skipped(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return true
	}
	dir := filepath.Dir(filepath.ToSlash(rel))
	if dir == "." {
		return false
	}
	for _, part := range strings.Split(dir, "/") {
		if vault.ShouldSkipDir(part) {
			return true
		}
	}
	return false
}

func (w *Watcher) addTree(dir string) error {
	if err := w.fsw.Add(dir); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() || vault.ShouldSkipDir(entry.Name()) {
			continue
		}
		if err := w.addTree(filepath.Join(dir, entry.Name())); err != nil {
			logs.Logger.Printf("watch add %s: %v", entry.Name(), err)
		}
	}
	return nil
}
