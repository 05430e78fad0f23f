package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	berrors "github.com/beacon-sh/beacon/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 6, cfg.Results.MaxVisible)
	assert.Equal(t, 128, cfg.Results.CacheSize)
	assert.True(t, cfg.Providers.Calculator)
}

func TestLoad_ExplicitMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var berr *berrors.BeaconError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, berrors.ErrCodeConfigNotFound, berr.Code)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
providers:
  terminal: false
  apps: true
  calculator: true
results:
  max_visible: 9
files:
  roots:
    - /tmp/docs
  max_depth: 3
terminal:
  shell: /bin/zsh
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Providers.Terminal)
	assert.Equal(t, 9, cfg.Results.MaxVisible)
	assert.Equal(t, []string{"/tmp/docs"}, cfg.Files.Roots)
	assert.Equal(t, 3, cfg.Files.MaxDepth)
	assert.Equal(t, "/bin/zsh", cfg.Terminal.Shell)
	assert.Equal(t, 128, cfg.Results.CacheSize, "untouched keys keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "results: [not a map")

	_, err := Load(path)
	require.Error(t, err)

	var berr *berrors.BeaconError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, berrors.ErrCodeConfigInvalid, berr.Code)
	assert.NotEmpty(t, berr.Suggestion)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BEACON_MAX_VISIBLE", "3")
	t.Setenv("BEACON_CACHE_SIZE", "16")
	t.Setenv("BEACON_SHELL", "/bin/fish")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Results.MaxVisible)
	assert.Equal(t, 16, cfg.Results.CacheSize)
	assert.Equal(t, "/bin/fish", cfg.Terminal.Shell)
}

func TestLoad_EnvOverridesBeatFile(t *testing.T) {
	path := writeConfig(t, "results:\n  max_visible: 9\n")
	t.Setenv("BEACON_MAX_VISIBLE", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Results.MaxVisible)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max_visible zero", func(c *Config) { c.Results.MaxVisible = 0 }},
		{"cache_size zero", func(c *Config) { c.Results.CacheSize = 0 }},
		{"max_depth zero", func(c *Config) { c.Files.MaxDepth = 0 }},
		{"all providers off", func(c *Config) { c.Providers = ProvidersConfig{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestHistoryPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultHistoryPath(), cfg.HistoryPath())

	cfg.History.Path = "/tmp/h.db"
	assert.Equal(t, "/tmp/h.db", cfg.HistoryPath())
}
