// Package config handles configuration loading and validation for marksync.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/marksync/internal/engine"
)

// Config holds the application configuration.
type Config struct {
	Sync    SyncConfig    `yaml:"sync"`
	TUI     TUIConfig     `yaml:"tui"`
	Logging LoggingConfig `yaml:"logging"`
}

// SyncConfig tunes the scroll synchronization engine.
type SyncConfig struct {
	Mode         string `yaml:"mode"`          // semantic, line-based, hybrid
	Accuracy     string `yaml:"accuracy"`      // fast, balanced, precise
	CooldownMS   int    `yaml:"cooldown_ms"`   // echo-suppression window after a programmatic scroll
	HeaderOffset int    `yaml:"header_offset"` // lines subtracted from preview scroll targets
}

// TUIConfig holds editor appearance settings.
type TUIConfig struct {
	Theme        string `yaml:"theme"`         // glamour style name
	PreviewRatio int    `yaml:"preview_ratio"` // preview share of the window width, percent
}

// LoggingConfig controls the JSON log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Sync: SyncConfig{
			Mode:         string(engine.ModeSemantic),
			Accuracy:     string(engine.AccuracyBalanced),
			CooldownMS:   100,
			HeaderOffset: 0,
		},
		TUI: TUIConfig{
			Theme:        "dark",
			PreviewRatio: 50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults apply.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Sync.Mode == "" {
		c.Sync.Mode = defaults.Sync.Mode
	}
	if c.Sync.Accuracy == "" {
		c.Sync.Accuracy = defaults.Sync.Accuracy
	}
	if c.Sync.CooldownMS == 0 {
		c.Sync.CooldownMS = defaults.Sync.CooldownMS
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.PreviewRatio == 0 {
		c.TUI.PreviewRatio = defaults.TUI.PreviewRatio
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// Cooldown returns the echo-suppression window as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.Sync.CooldownMS) * time.Millisecond
}

// EngineOptions maps the sync section onto engine options.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		Mode:         engine.Mode(c.Sync.Mode),
		Accuracy:     engine.Accuracy(c.Sync.Accuracy),
		Cooldown:     c.Cooldown(),
		HeaderOffset: float64(c.Sync.HeaderOffset),
	}
}
