package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OutputConfig selects the synth MIDI output port.
type OutputConfig struct {
	PortName string `json:"portName,omitempty"` // substring match, empty = first available
}

// Config is the main configuration structure, stored as JSON under
// ~/.config/go-guitar.
type Config struct {
	Tuning     string       `json:"tuning,omitempty"`     // built-in tuning name
	Instrument string       `json:"instrument,omitempty"` // GM instrument name
	Velocity   uint8        `json:"velocity,omitempty"`   // fixed note-on velocity
	ReleaseMs  int          `json:"releaseMs,omitempty"`  // key-release gate (terminal repeat timeout)
	Output     OutputConfig `json:"output,omitempty"`
	Debug      bool         `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Tuning:     "Standard",
		Instrument: "Acoustic Guitar (steel)",
		Velocity:   100,
		ReleaseMs:  350,
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-guitar"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Velocity > 127 {
		return nil, fmt.Errorf("%s: velocity %d out of range 0-127", path, cfg.Velocity)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return c.saveTo(filepath.Join(dir, "config.json"))
}

func (c *Config) saveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
