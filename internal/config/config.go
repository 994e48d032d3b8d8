// Package config handles loading the listo config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the ~/.config/listo/config.toml file. Every field is
// optional; zero values fall back to defaults.
type Config struct {
	// Dir is where checklist state lives. Defaults to
	// ~/.local/share/listo; the LISTO_DIR environment variable wins
	// over both the file and the default.
	Dir string `toml:"dir"`

	// Backend selects the storage backend: "file", "sqlite", or empty
	// to autodetect from the data dir contents.
	Backend string `toml:"backend"`

	// Theme names the color theme: classic, neon, or mono.
	Theme string `toml:"theme"`

	// PollIntervalMS paces the cross-process change watcher.
	PollIntervalMS int `toml:"poll-interval-ms"`
}

// Load reads the global config file. A missing file yields an empty
// config; a malformed one is an error.
func Load() (*Config, error) {
	p, err := configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(p)
	if err != nil {
		return nil, err
	}
	if env := os.Getenv("LISTO_DIR"); env != "" {
		cfg.Dir = env
	}
	return cfg, nil
}

// LoadFile reads one config file, tolerating its absence.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// DataDir resolves the data directory, applying the default.
func (c *Config) DataDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "listo"), nil
}

// PollInterval resolves the watcher interval, applying the default.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "listo", "config.toml"), nil
}
