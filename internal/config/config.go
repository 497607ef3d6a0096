// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package config loads irstat's optional YAML configuration file.
//
// The file only holds CLI defaults (logging, colour, capture format, serial
// capture settings). Decoder timing windows are protocol constants and are
// not configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only config file version understood
const CurrentVersion = 1

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds CLI defaults
type Config struct {
	Version  int          `yaml:"version"`
	LogLevel string       `yaml:"log_level,omitempty"`
	Color    string       `yaml:"color,omitempty"`
	Format   string       `yaml:"format,omitempty"`
	Serial   SerialConfig `yaml:"serial,omitempty"`
}

// SerialConfig describes a serial-attached IR receiver that prints mode2
// lines
type SerialConfig struct {
	Port        string        `yaml:"port,omitempty"`
	Baud        int           `yaml:"baud,omitempty"`
	IdleTimeout time.Duration `yaml:"idle_timeout,omitempty"`
	MaxWait     time.Duration `yaml:"max_wait,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		LogLevel: "warn",
		Color:    ColorAuto,
		Format:   "auto",
		Serial: SerialConfig{
			Baud:        115200,
			IdleTimeout: 500 * time.Millisecond,
			MaxWait:     30 * time.Second,
		},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "irstat", "config.yaml"), nil
}

// Load reads the config file at path. An empty path means DefaultPath.
// A missing file yields the defaults; an explicitly named missing file is
// an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config data over the defaults and validates it
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (use auto, always or never)", c.Color)
	}

	switch c.Format {
	case "auto", "mode2", "raw":
	default:
		return fmt.Errorf("invalid capture format %q (use auto, mode2 or raw)", c.Format)
	}

	if c.Serial.Baud <= 0 {
		return fmt.Errorf("invalid serial baud rate: %d", c.Serial.Baud)
	}
	if c.Serial.IdleTimeout <= 0 {
		return fmt.Errorf("serial idle_timeout must be positive")
	}
	if c.Serial.MaxWait <= 0 {
		return fmt.Errorf("serial max_wait must be positive")
	}

	return nil
}

// Marshal encodes c as YAML with a short header comment
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	header := []byte("# irstat configuration\n# Command line flags override these values.\n\n")
	return append(header, data...), nil
}
