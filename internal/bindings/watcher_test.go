package bindings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitForBinding drains reloads until one carries the wanted binding or the
// deadline passes. Editors and Save both produce several fsnotify events per
// change, some of which may observe a half-written file.
func waitForBinding(t *testing.T, reloads <-chan *Map, action string, scanCode int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case m := <-reloads:
			if m.Bindings[action].ScanCode == scanCode {
				return
			}
		case <-deadline:
			t.Fatalf("binding %q (scan %d) never arrived via reload", action, scanCode)
		}
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")

	if err := Save(path, &Map{Bindings: map[string]Binding{
		"jump": {ScanCode: 57},
	}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloads := make(chan *Map, 16)
	w, err := Watch(path, func(m *Map) {
		reloads <- m
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := Save(path, &Map{Bindings: map[string]Binding{
		"jump":   {ScanCode: 57},
		"crouch": {ScanCode: 42},
	}}); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	waitForBinding(t, reloads, "crouch", 42)
}

func TestWatchReloadsOnRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")

	if err := Save(path, &Map{Bindings: map[string]Binding{
		"jump": {ScanCode: 57},
	}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloads := make(chan *Map, 16)
	w, err := Watch(path, func(m *Map) {
		reloads <- m
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	// Write-then-rename, the way editors replace a file.
	tmp := filepath.Join(dir, "bindings.toml.tmp")
	if err := Save(tmp, &Map{Bindings: map[string]Binding{
		"sprint": {ScanCode: 42},
	}}); err != nil {
		t.Fatalf("save tmp: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	waitForBinding(t, reloads, "sprint", 42)
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloads := make(chan *Map, 16)
	w, err := Watch(path, func(m *Map) {
		reloads <- m
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-reloads:
		t.Fatalf("sibling file change triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
