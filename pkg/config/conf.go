// Package config loads and persists the application configuration. Every
// engine tunable is settable here without a code change; an explicit Config
// value is passed into the components that need it, there is no process-wide
// registry.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600
)

// Engine holds the scoring coordinator tunables.
type Engine struct {
	Workers        int     `yaml:"workers"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	Threshold      float64 `yaml:"threshold"`
}

// Timeout returns the per-scorer timeout as a duration.
func (e Engine) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// Scorers holds the per-scorer rule inputs. Empty lists select the built-in
// defaults.
type Scorers struct {
	FlaggedPatterns     []string `yaml:"flagged_patterns,omitempty"`
	SuspiciousKeywords  []string `yaml:"suspicious_keywords,omitempty"`
	HighRiskCountries   []string `yaml:"high_risk_countries,omitempty"`
	MediumRiskCountries []string `yaml:"medium_risk_countries,omitempty"`
}

// Generator holds the synthetic batch settings.
type Generator struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

// Report holds the report writer settings.
type Report struct {
	HighValueThreshold float64 `yaml:"high_value_threshold"`
	TopN               int     `yaml:"top_n"`
}

// Config is the application configuration.
type Config struct {
	Engine    Engine    `yaml:"engine"`
	Scorers   Scorers   `yaml:"scorers"`
	Generator Generator `yaml:"generator"`
	Report    Report    `yaml:"report"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Engine: Engine{
			Workers:        8,
			TimeoutSeconds: 5,
			Threshold:      0.5,
		},
		Generator: Generator{
			Count: 10,
		},
		Report: Report{
			HighValueThreshold: 50000,
			TopN:               10,
		},
	}
}

// Save writes the config into the given directory.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// ReadOrCreate reads the config from the given directory, creating the
// directory and a default config file when either is missing.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, fmt.Errorf("creating config dir %s: %w", dirPath, err)
		}
	}

	path := filepath.Join(dirPath, configFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, Default()); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &c, nil
}

// HomeDir returns (and creates if needed) the application home directory
// under $HOME, falling back to the current directory.
func HomeDir(name string) string {
	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}
	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			slog.Debug("error creating dir, using home", "path", dir, "error", err)
			return home
		}
	}
	return dir
}
