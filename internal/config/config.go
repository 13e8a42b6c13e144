// Package config loads and saves finstmt configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finstmt configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Export  ExportConfig  `toml:"export"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	MappingPath string `toml:"mapping_path,omitempty"`
	ExportDir   string `toml:"export_dir,omitempty"`
}

// ExportConfig holds export formatting settings.
type ExportConfig struct {
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Currency: "$",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finstmt")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finstmt")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// MappingPath resolves the mapping file location: the configured path if
// set, otherwise mapping.json next to the config file.
func (c Config) MappingPath() string {
	if c.General.MappingPath != "" {
		return c.General.MappingPath
	}
	return filepath.Join(Dir(), "mapping.json")
}

// ExportDir resolves the export directory: the configured dir if set,
// otherwise the current directory.
func (c Config) ExportDir() string {
	if c.General.ExportDir != "" {
		return c.General.ExportDir
	}
	return "."
}
