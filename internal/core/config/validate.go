package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

var (
	validModes      = []string{"semantic", "line-based", "hybrid"}
	validAccuracies = []string{"fast", "balanced", "precise"}
)

// Validate checks structural validity: enum fields, ranges.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("sync.mode", c.Sync.Mode, oneOf(validModes)),
		criterio.Run("sync.accuracy", c.Sync.Accuracy, oneOf(validAccuracies)),
		criterio.Run("sync.cooldown_ms", c.Sync.CooldownMS, nonNegative),
		criterio.Run("sync.header_offset", c.Sync.HeaderOffset, nonNegative),
		criterio.Run("tui.preview_ratio", c.TUI.PreviewRatio, percentRange),
	)
}

// ValidateDeep performs Validate plus I/O checks: config file and log file
// accessibility. The configPath argument names the file being validated
// (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("logging.file", c.Logging.File, logDirWritable),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Sync.Mode == "line-based" {
		warnings = append(warnings, ValidationWarning{
			Category: "Sync",
			Item:     "mode",
			Message:  "line-based mode disables semantic matching; the preview will not follow the cursor",
		})
	}
	if c.Sync.CooldownMS > 1000 {
		warnings = append(warnings, ValidationWarning{
			Category: "Sync",
			Item:     "cooldown_ms",
			Message:  fmt.Sprintf("cooldown of %dms will make sync feel unresponsive", c.Sync.CooldownMS),
		})
	}

	return warnings
}

func oneOf(valid []string) func(string) error {
	return func(value string) error {
		for _, v := range valid {
			if value == v {
				return nil
			}
		}
		return fmt.Errorf("must be one of %v, got %q", valid, value)
	}
}

func nonNegative(v int) error {
	if v < 0 {
		return fmt.Errorf("must not be negative, got %d", v)
	}
	return nil
}

func percentRange(v int) error {
	if v < 10 || v > 90 {
		return fmt.Errorf("must be between 10 and 90, got %d", v)
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// logDirWritable validates that the log file's directory exists or can be
// created.
func logDirWritable(path string) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dir)
	}
	return nil
}
