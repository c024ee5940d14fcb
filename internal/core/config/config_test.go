package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/marksync/internal/engine"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "semantic", cfg.Sync.Mode)
	assert.Equal(t, "balanced", cfg.Sync.Accuracy)
	assert.Equal(t, 100*time.Millisecond, cfg.Cooldown())
	assert.Equal(t, "dark", cfg.TUI.Theme)
	assert.Equal(t, 50, cfg.TUI.PreviewRatio)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
sync:
  mode: hybrid
  cooldown_ms: 250
tui:
  theme: light
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hybrid", cfg.Sync.Mode)
	assert.Equal(t, 250*time.Millisecond, cfg.Cooldown())
	assert.Equal(t, "light", cfg.TUI.Theme)
	// Unset fields keep their defaults.
	assert.Equal(t, "balanced", cfg.Sync.Accuracy)
	assert.Equal(t, 50, cfg.TUI.PreviewRatio)
}

func TestLoad_InvalidModeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sync:\n  mode: telepathic\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync.mode")
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sync: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Ranges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.CooldownMS = -5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.TUI.PreviewRatio = 95
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.Mode = "hybrid"
	cfg.Sync.HeaderOffset = 2

	opts := cfg.EngineOptions()
	assert.Equal(t, engine.ModeHybrid, opts.Mode)
	assert.Equal(t, engine.AccuracyBalanced, opts.Accuracy)
	assert.Equal(t, 100*time.Millisecond, opts.Cooldown)
	assert.Equal(t, 2.0, opts.HeaderOffset)
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.Sync.Mode = "line-based"
	cfg.Sync.CooldownMS = 5000
	assert.Len(t, cfg.Warnings(), 2)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.ValidateDeep(t.TempDir()))
}
