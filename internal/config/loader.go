package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns ~/.config/gosplit, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gosplit")
}

// Load loads configuration from ~/.config/gosplit/config.yaml. A missing or
// unreadable file yields the defaults.
func Load() Config {
	cfg := DefaultConfig()

	dir := Dir()
	if dir == "" {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}

// LoadFile loads configuration from an explicit path over the defaults.
// Unlike Load it reports read and parse failures.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// StatePath returns the placement database path.
func (c Config) StatePath() string {
	if c.StateDB != "" {
		return expandHome(c.StateDB)
	}
	dir := Dir()
	if dir == "" {
		return "gosplit.db"
	}
	return filepath.Join(dir, "state.db")
}

// LogPath returns the log file path, or "" when logs are discarded.
func (c Config) LogPath() string {
	return expandHome(c.LogFile)
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
