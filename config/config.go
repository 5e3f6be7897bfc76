package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PreviewConfig controls the MIDI preview export
type PreviewConfig struct {
	Tempo      float64 `json:"tempo,omitempty"`
	NoteMillis int     `json:"noteMillis,omitempty"`
	Channel    uint8   `json:"channel,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	ExportDir   string        `json:"exportDir,omitempty"`
	PalettePath string        `json:"palettePath,omitempty"` // GIMP .gpl, empty = built-in
	Debug       bool          `json:"debug,omitempty"`
	Preview     PreviewConfig `json:"preview,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ExportDir: "exports",
		Preview: PreviewConfig{
			Tempo:      120,
			NoteMillis: 100,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "beatmapper"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Start from defaults so missing fields keep them
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveExportDir returns ExportDir, relative paths resolved against base
func (c *Config) ResolveExportDir(base string) string {
	if c.ExportDir == "" {
		return base
	}
	if filepath.IsAbs(c.ExportDir) {
		return c.ExportDir
	}
	return filepath.Join(base, c.ExportDir)
}
