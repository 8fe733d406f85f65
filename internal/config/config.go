package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the broadcaster settings persisted in the TOML file.
type Config struct {
	Capture  CaptureConfig  `toml:"capture"`
	Bindings BindingsConfig `toml:"bindings"`
}

// CaptureConfig selects and tunes the input backend.
type CaptureConfig struct {
	Backend string `toml:"backend"` // "window" or "evdev"
	Device  string `toml:"device"`  // evdev device node, backend "evdev" only
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
}

// BindingsConfig locates the key-binding table.
type BindingsConfig struct {
	Path  string `toml:"path"` // empty: bindings.toml beside the config file
	Watch bool   `toml:"watch"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			Backend: "window",
			Device:  "/dev/input/event0",
			Title:   "inputcast",
			Width:   640,
			Height:  480,
		},
		Bindings: BindingsConfig{
			Watch: true,
		},
	}
}

// DefaultDir returns the per-user configuration directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "inputcast"), nil
}

// Load reads the configuration from path. If the file does not exist the
// default configuration is written there and returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// BindingsPath resolves the binding file location relative to the config
// file when the setting is empty.
func (c *Config) BindingsPath(configPath string) string {
	if c.Bindings.Path != "" {
		return c.Bindings.Path
	}
	return filepath.Join(filepath.Dir(configPath), "bindings.toml")
}

// BroadcasterFlags holds command-line configuration for the broadcaster
// binary.
type BroadcasterFlags struct {
	SignalingURL  string
	BroadcasterID string
	ConfigPath    string
}

// ParseBroadcasterFlags parses flags for the broadcaster binary.
func ParseBroadcasterFlags() *BroadcasterFlags {
	f := &BroadcasterFlags{}
	flag.StringVar(&f.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	flag.StringVar(&f.BroadcasterID, "id", "", "Broadcaster ID (auto-generated if empty)")
	flag.StringVar(&f.ConfigPath, "config", "", "Config file path (default: user config dir)")
	flag.Parse()

	if f.BroadcasterID == "" {
		f.BroadcasterID = fmt.Sprintf("cast-%s", randomID())
	}
	if f.ConfigPath == "" {
		if dir, err := DefaultDir(); err == nil {
			f.ConfigPath = filepath.Join(dir, "config.toml")
		}
	}
	return f
}

// MonitorFlags holds command-line configuration for the monitor binary.
type MonitorFlags struct {
	SignalingURL  string
	MonitorID     string
	BroadcasterID string
}

// ParseMonitorFlags parses flags for the monitor binary.
func ParseMonitorFlags() *MonitorFlags {
	f := &MonitorFlags{}
	flag.StringVar(&f.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	flag.StringVar(&f.MonitorID, "id", "", "Monitor ID (auto-generated if empty)")
	flag.StringVar(&f.BroadcasterID, "broadcaster", "", "Broadcaster ID to connect to (required)")
	flag.Parse()

	if f.MonitorID == "" {
		f.MonitorID = fmt.Sprintf("mon-%s", randomID())
	}
	return f
}

func randomID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
