// Package bindings stores user-configurable key bindings. Bindings are keyed
// by platform scan code where possible: scan codes identify the physical key
// and stay stable across sessions, so they are safe to persist, but a saved
// file does not transfer between platforms.
package bindings

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/minsuh/inputcast/internal/event"
)

// Binding ties a named action to a key. A zero code means unset; when both
// are set, the scan code identifies the key and the key code is ignored.
type Binding struct {
	ScanCode int `toml:"scan_code,omitempty"`
	KeyCode  int `toml:"key_code,omitempty"`
}

// Map holds the full binding table, keyed by action name.
type Map struct {
	Bindings map[string]Binding `toml:"bindings"`
}

// Default returns the stock binding table.
func Default() *Map {
	return &Map{
		Bindings: map[string]Binding{
			"jump":      {ScanCode: 57}, // space
			"forward":   {ScanCode: 17}, // w
			"back":      {ScanCode: 31}, // s
			"left":      {ScanCode: 30}, // a
			"right":     {ScanCode: 32}, // d
			"inventory": {ScanCode: 18}, // e
		},
	}
}

// Resolve returns the action names bound to the key that fired e, sorted for
// a consistent trigger order. Only press events resolve; releases, repeats
// and sentinel values match nothing.
func (m *Map) Resolve(e event.Key) []string {
	if e.Action() != event.ActionPress {
		return nil
	}

	var actions []string
	for name, b := range m.Bindings {
		switch {
		case b.ScanCode != 0:
			if e.ScanCode() == b.ScanCode {
				actions = append(actions, name)
			}
		case b.KeyCode != 0:
			if e.KeyCode() == b.KeyCode {
				actions = append(actions, name)
			}
		}
	}
	sort.Strings(actions)
	return actions
}

// Set binds an action to the physical key that fired e, replacing any
// previous binding for that action.
func (m *Map) Set(action string, e event.Key) {
	if m.Bindings == nil {
		m.Bindings = make(map[string]Binding)
	}
	m.Bindings[action] = Binding{ScanCode: e.ScanCode(), KeyCode: e.KeyCode()}
}

// Load reads the binding table from path. If the file does not exist the
// default table is written there and returned; otherwise the file is the
// whole table, so removing a stock binding from it removes the binding.
func Load(path string) (*Map, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		m := Default()
		if err := Save(path, m); err != nil {
			return m, err
		}
		return m, nil
	}

	m := &Map{}
	if _, err := toml.DecodeFile(path, m); err != nil {
		return m, err
	}
	return m, nil
}

// Save writes the binding table to path, creating parent directories as
// needed.
func Save(path string, m *Map) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(m)
}
