package bindings

import (
	"path/filepath"
	"testing"

	"github.com/minsuh/inputcast/internal/event"
)

func TestResolveByScanCode(t *testing.T) {
	m := &Map{Bindings: map[string]Binding{
		"jump": {ScanCode: 57},
	}}

	actions := m.Resolve(event.NewKey(32, 57, event.ActionPress, 0))
	if len(actions) != 1 || actions[0] != "jump" {
		t.Fatalf("Resolve = %v, want [jump]", actions)
	}
}

func TestResolveByKeyCode(t *testing.T) {
	m := &Map{Bindings: map[string]Binding{
		"chat": {KeyCode: 84},
	}}

	actions := m.Resolve(event.NewKey(84, 20, event.ActionPress, 0))
	if len(actions) != 1 || actions[0] != "chat" {
		t.Fatalf("Resolve = %v, want [chat]", actions)
	}
}

func TestScanCodeTakesPrecedence(t *testing.T) {
	// Scan and key code both set, but only the scan code identifies the key.
	m := &Map{Bindings: map[string]Binding{
		"jump": {ScanCode: 57, KeyCode: 32},
	}}

	// Matching key code, wrong scan code: no trigger.
	if actions := m.Resolve(event.NewKey(32, 99, event.ActionPress, 0)); len(actions) != 0 {
		t.Fatalf("Resolve = %v, want none", actions)
	}
	// Matching scan code, different key code: triggers.
	if actions := m.Resolve(event.NewKey(0, 57, event.ActionPress, 0)); len(actions) != 1 {
		t.Fatalf("Resolve = %v, want [jump]", actions)
	}
}

func TestResolveIgnoresReleaseAndRepeat(t *testing.T) {
	m := &Map{Bindings: map[string]Binding{
		"jump": {ScanCode: 57},
	}}

	if actions := m.Resolve(event.NewKey(32, 57, event.ActionRelease, 0)); len(actions) != 0 {
		t.Fatalf("release resolved to %v", actions)
	}
	if actions := m.Resolve(event.NewKey(32, 57, event.ActionRepeat, 0)); len(actions) != 0 {
		t.Fatalf("repeat resolved to %v", actions)
	}
}

func TestResolveSentinelMatchesNothing(t *testing.T) {
	m := Default()
	if actions := m.Resolve(event.SentinelKey()); len(actions) != 0 {
		t.Fatalf("sentinel resolved to %v", actions)
	}
}

func TestResolveMultipleSorted(t *testing.T) {
	m := &Map{Bindings: map[string]Binding{
		"zoom":   {ScanCode: 42},
		"sprint": {ScanCode: 42},
	}}

	actions := m.Resolve(event.NewKey(0, 42, event.ActionPress, 0))
	if len(actions) != 2 || actions[0] != "sprint" || actions[1] != "zoom" {
		t.Fatalf("Resolve = %v, want [sprint zoom]", actions)
	}
}

func TestSet(t *testing.T) {
	m := &Map{}
	m.Set("screenshot", event.NewKey(290, 183, event.ActionPress, 0))

	b, ok := m.Bindings["screenshot"]
	if !ok {
		t.Fatalf("binding not stored")
	}
	if b.ScanCode != 183 || b.KeyCode != 290 {
		t.Fatalf("stored binding = %+v", b)
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "bindings.toml")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if len(m.Bindings) == 0 {
		t.Fatalf("first load returned empty table")
	}

	// The file must now exist and load back identically.
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(reloaded.Bindings) != len(m.Bindings) {
		t.Fatalf("reloaded %d bindings, want %d", len(reloaded.Bindings), len(m.Bindings))
	}
	for name, b := range m.Bindings {
		if reloaded.Bindings[name] != b {
			t.Fatalf("binding %q changed on reload: %+v != %+v", name, reloaded.Bindings[name], b)
		}
	}
}

func TestLoadDoesNotResurrectRemovedDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.toml")

	// User kept one stock binding and deleted the rest.
	m := &Map{Bindings: map[string]Binding{
		"forward": {ScanCode: 17},
	}}
	if err := Save(path, m); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Bindings) != 1 {
		t.Fatalf("loaded %d bindings, want 1: %+v", len(loaded.Bindings), loaded.Bindings)
	}
	if _, ok := loaded.Bindings["jump"]; ok {
		t.Fatalf("removed stock binding came back on load")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.toml")

	m := &Map{Bindings: map[string]Binding{
		"jump": {ScanCode: 57},
		"chat": {KeyCode: 84},
	}}
	if err := Save(path, m); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Bindings["jump"].ScanCode != 57 {
		t.Fatalf("jump binding = %+v", loaded.Bindings["jump"])
	}
	if loaded.Bindings["chat"].KeyCode != 84 {
		t.Fatalf("chat binding = %+v", loaded.Bindings["chat"])
	}
}
