// Package config handles reading and writing .dice/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/berth-dev/dice/internal/dice"
)

// Config is the top-level structure for .dice/config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Session SessionConfig `yaml:"session"`
	Sound   SoundConfig   `yaml:"sound"`
	Log     LogConfig     `yaml:"log"`
}

// SessionConfig holds the starting state of a new session.
type SessionConfig struct {
	Die         dice.DieType `yaml:"die"`
	Count       int          `yaml:"count"`
	ShowHistory bool         `yaml:"show_history"`
}

// SoundConfig controls the sound played on every roll.
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"` // e.g. "paplay ~/sounds/roll.wav"; empty rings the terminal bell
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

const configDir = ".dice"
const configFile = "config.yaml"

// Dir returns the .dice directory inside the given root.
func Dir(root string) string {
	return filepath.Join(root, configDir)
}

// ReadConfig reads .dice/config.yaml from the given directory.
// dir is the root that contains .dice/, not .dice/ itself.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Start from defaults so fields missing from older files keep sane values.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads the config and falls back to DefaultConfig when the
// file does not exist. A malformed file is still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// WriteConfig writes cfg to .dice/config.yaml in the given directory.
// Creates the .dice/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Session: SessionConfig{
			Die:         dice.D6,
			Count:       1,
			ShowHistory: true,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}
