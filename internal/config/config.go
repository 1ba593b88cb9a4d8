// Package config loads the demo applications' configuration from TOML
// files. Missing files and missing keys fall back to widget defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "typeahead"

type Config struct {
	Placeholder    string `koanf:"placeholder"`
	Label          string `koanf:"label"`
	MaxResults     int    `koanf:"max_results"`      // clamped by the widget to [1,100]
	DebounceMs     int    `koanf:"debounce_ms"`      // 0 = widget default (300)
	MinQueryLength int    `koanf:"min_query_length"` // 0 = widget default (1)
	Mouse          *bool  `koanf:"mouse"`            // enable mouse tracking (default: true)
	LogFile        string `koanf:"log_file"`         // fetch-error log destination
}

// Load reads configuration from the standard locations, later paths
// winning. A missing file is not an error.
func Load() (*Config, error) {
	return load(configPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

// MouseEnabled returns the mouse setting with its default applied.
func (c *Config) MouseEnabled() bool {
	return c.Mouse == nil || *c.Mouse
}

func configPaths() []string {
	paths := []string{
		// XDG config home, usually ~/.config/typeahead/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
	}

	// ./typeahead.toml (pwd, highest priority)
	paths = append(paths, appName+".toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
