// Package config loads and validates the Beacon configuration from
// ~/.config/beacon/config.yaml, with defaults for everything and
// BEACON_* environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	berrors "github.com/beacon-sh/beacon/internal/errors"
)

// Config is the complete Beacon configuration.
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Results   ResultsConfig   `yaml:"results"`
	Files     FilesConfig     `yaml:"files"`
	Apps      AppsConfig      `yaml:"apps"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	History   HistoryConfig   `yaml:"history"`
}

// ProvidersConfig enables or disables individual providers.
type ProvidersConfig struct {
	Apps       bool `yaml:"apps"`
	Calculator bool `yaml:"calculator"`
	Files      bool `yaml:"files"`
	Terminal   bool `yaml:"terminal"`
	URL        bool `yaml:"url"`
}

// ResultsConfig tunes the published result list.
type ResultsConfig struct {
	// MaxVisible caps the rows shown (and selectable) in the UI.
	MaxVisible int `yaml:"max_visible"`
	// CacheSize bounds the per-query result cache (LRU over queries).
	CacheSize int `yaml:"cache_size"`
}

// FilesConfig tunes the file provider's walk.
type FilesConfig struct {
	// Roots are the directories searched. Empty means the home dir.
	Roots []string `yaml:"roots"`
	// MaxDepth bounds how deep the walk descends below each root.
	MaxDepth int `yaml:"max_depth"`
	// MaxResults caps the matches one query may report.
	MaxResults int `yaml:"max_results"`
}

// AppsConfig tunes the application index.
type AppsConfig struct {
	// Dirs are the desktop-entry directories. Empty means the XDG
	// defaults.
	Dirs []string `yaml:"dirs"`
	// Watch rebuilds the index when application dirs change.
	Watch bool `yaml:"watch"`
}

// TerminalConfig configures command activation.
type TerminalConfig struct {
	// Shell runs "$" queries. Empty means $SHELL, then /bin/sh.
	Shell string `yaml:"shell"`
}

// HistoryConfig configures the launch-history store.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path of the sqlite database. Empty means the default data path.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Providers: ProvidersConfig{
			Apps:       true,
			Calculator: true,
			Files:      true,
			Terminal:   true,
			URL:        true,
		},
		Results: ResultsConfig{
			MaxVisible: 6,
			CacheSize:  128,
		},
		Files: FilesConfig{
			MaxDepth:   6,
			MaxResults: 16,
		},
		Apps: AppsConfig{
			Watch: true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// DefaultPath returns the config file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "beacon", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "beacon", "config.yaml")
	}
	return filepath.Join(home, ".config", "beacon", "config.yaml")
}

// DefaultHistoryPath returns the launch-history database location.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".beacon", "history.db")
	}
	return filepath.Join(home, ".beacon", "history.db")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file is not an error: defaults apply. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, berrors.ConfigError(
				fmt.Sprintf("invalid config file %s", path), err).
				WithSuggestion("fix the YAML syntax or delete the file to use defaults")
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, berrors.New(berrors.ErrCodeConfigNotFound,
				fmt.Sprintf("config file not found: %s", path), err)
		}
	default:
		return nil, berrors.ConfigError(
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies BEACON_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BEACON_MAX_VISIBLE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Results.MaxVisible = n
		}
	}
	if v := os.Getenv("BEACON_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Results.CacheSize = n
		}
	}
	if v := os.Getenv("BEACON_SHELL"); v != "" {
		c.Terminal.Shell = v
	}
	if v := os.Getenv("BEACON_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Results.MaxVisible < 1 {
		return berrors.ConfigError(
			fmt.Sprintf("results.max_visible must be >= 1, got %d", c.Results.MaxVisible), nil)
	}
	if c.Results.CacheSize < 1 {
		return berrors.ConfigError(
			fmt.Sprintf("results.cache_size must be >= 1, got %d", c.Results.CacheSize), nil)
	}
	if c.Files.MaxDepth < 1 {
		return berrors.ConfigError(
			fmt.Sprintf("files.max_depth must be >= 1, got %d", c.Files.MaxDepth), nil)
	}
	enabled := c.Providers.Apps || c.Providers.Calculator || c.Providers.Files ||
		c.Providers.Terminal || c.Providers.URL
	if !enabled {
		return berrors.ConfigError("all providers are disabled", nil).
			WithSuggestion("enable at least one provider under providers:")
	}
	return nil
}

// HistoryPath returns the configured or default history database path.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return DefaultHistoryPath()
}
