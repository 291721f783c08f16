// Package config defines the calltrace configuration file format.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../tools/schema-generator

// NormalizeConfig defines default normalization settings. Command-line
// flags override anything set here.
type NormalizeConfig struct {
	// AgentName is the fallback display name for unnamed agent turns.
	AgentName string `yaml:"agent_name,omitempty"`

	// UserName is the fallback display name for unnamed user turns.
	UserName string `yaml:"user_name,omitempty"`

	// Merge coalesces consecutive turns from the same named speaker.
	Merge bool `yaml:"merge,omitempty"`

	// Language is the default language code recorded in document metadata.
	Language string `yaml:"language,omitempty"`
}

// RenderConfig defines settings for terminal and text rendering.
type RenderConfig struct {
	// Timestamps controls whether rendered lines carry [MM:SS] markers.
	Timestamps bool `yaml:"timestamps,omitempty"`
}

// Config is the top-level configuration structure for calltrace.
type Config struct {
	Normalize NormalizeConfig `yaml:"normalize,omitempty"`
	Render    RenderConfig    `yaml:"render,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{Timestamps: true},
	}
}

// Load reads ~/.config/calltrace/config.yaml, falling back to defaults when
// the file is missing or unreadable.
func Load() Config {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "calltrace", "config.yaml"))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}
