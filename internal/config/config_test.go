package config

import (
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if cfg.Capture.Backend != "window" {
		t.Fatalf("default backend = %q", cfg.Capture.Backend)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if *reloaded != *cfg {
		t.Fatalf("reloaded config differs: %+v != %+v", reloaded, cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Capture.Backend = "evdev"
	cfg.Capture.Device = "/dev/input/event3"
	cfg.Bindings.Watch = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Capture.Backend != "evdev" || loaded.Capture.Device != "/dev/input/event3" {
		t.Fatalf("capture config = %+v", loaded.Capture)
	}
	if loaded.Bindings.Watch {
		t.Fatalf("bindings.watch not persisted")
	}
}

func TestBindingsPathDefaultsBesideConfig(t *testing.T) {
	cfg := Default()
	got := cfg.BindingsPath("/home/u/.config/inputcast/config.toml")
	want := filepath.Join("/home/u/.config/inputcast", "bindings.toml")
	if got != want {
		t.Fatalf("BindingsPath = %q, want %q", got, want)
	}

	cfg.Bindings.Path = "/etc/inputcast/bindings.toml"
	if got := cfg.BindingsPath("/anywhere/config.toml"); got != "/etc/inputcast/bindings.toml" {
		t.Fatalf("explicit BindingsPath = %q", got)
	}
}
