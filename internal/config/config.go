// Package config provides configuration management for topoconvert.
//
// Everything has a working default; a config file only pins the
// defaults a site wants to change (output directory, history database,
// the server entry written into converted documents).
//
// Config file locations (priority order):
//  1. $TOPOCONVERT_CONFIG
//  2. ./topoconvert.yaml
//  3. ~/.config/topoconvert/config.yaml
//  4. /etc/topoconvert/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the converter's runtime configuration.
type Config struct {
	// Output is the directory converted projects are written into.
	// Empty means the current working directory.
	Output string `yaml:"output,omitempty"`
	// HistoryDB is the path of the conversion-run history database.
	// Empty disables history recording.
	HistoryDB string `yaml:"history_db,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	Server    Server `yaml:"server,omitempty"`
}

// Server is the server entry written into every converted document.
type Server struct {
	Host string `yaml:"host,omitempty"`
	ID   int    `yaml:"id,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// FindConfigPath returns the first existing config file path, or "".
func FindConfigPath() string {
	if path := os.Getenv("TOPOCONVERT_CONFIG"); path != "" {
		return path
	}

	candidates := []string{"./topoconvert.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "topoconvert", "config.yaml"))
	}
	candidates = append(candidates, "/etc/topoconvert/config.yaml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warning"
	}
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.ID == 0 {
		c.Server.ID = 1
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
}
