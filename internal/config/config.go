// Package config loads the optional project configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout,omitempty"`
	WriteTimeout string `yaml:"write_timeout,omitempty"`
}

// Config is the project configuration.
type Config struct {
	Verbose    bool         `yaml:"verbose"`
	OnConflict string       `yaml:"on_conflict,omitempty"`
	Server     ServerConfig `yaml:"server"`
}

const ConfigFileName = ".fsutil.yaml"

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		OnConflict: "overwrite",
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Load reads ConfigFileName from dir. A missing file returns
// ErrConfigNotFound so callers can fall back to Default.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.OnConflict {
	case "", "overwrite", "skip", "prompt":
		return nil
	default:
		return fmt.Errorf("on_conflict must be overwrite, skip, or prompt, got %q", c.OnConflict)
	}
}
