// Package config manages the postflow configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the postflow configuration.
type Config struct {
	Log LogConfig `toml:"log"`
	UI  UIConfig  `toml:"ui"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `toml:"file"`  // Log file path; empty keeps stderr only
	Level string `toml:"level"` // debug, info, warn, error, none
}

// UIConfig holds demo screen settings.
type UIConfig struct {
	Accent     string `toml:"accent"`      // ANSI color for highlights
	InitialGet bool   `toml:"initial_get"` // Issue a get-post request on load
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{Accent: "205", InitialGet: true},
	}
}

// Dir returns the postflow config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "postflow"), nil
}

// Path returns the path to config.toml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config.toml, falling back to defaults when the file does
// not exist yet. Missing keys keep their default values.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to config.toml, creating the directory if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
