// Package config resolves Datadog API credentials and client settings.
//
// Settings are resolved from three sources, highest priority first:
//
//  1. Command-line flags (--api-key, --app-key, --site)
//  2. Environment variables (DD_API_KEY, DD_APP_KEY, DD_SITE)
//  3. Config file (~/.config/doghouse/config.toml)
//
// The config file uses TOML:
//
//	api_key = "..."
//	app_key = "..."
//	site    = "datadoghq.eu"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/doghouse/pkg/errors"
)

// DefaultSite is the Datadog site used when none is configured.
const DefaultSite = "datadoghq.com"

// Environment variable names, matching the official Datadog client libraries.
const (
	EnvAPIKey = "DD_API_KEY"
	EnvAppKey = "DD_APP_KEY"
	EnvSite   = "DD_SITE"
)

// Config holds resolved Datadog client settings.
type Config struct {
	APIKey string `toml:"api_key"`
	AppKey string `toml:"app_key"`
	Site   string `toml:"site"`
}

// Overrides carries flag-level values that take priority over the
// environment and the config file. Empty fields mean "not set".
type Overrides struct {
	APIKey string
	AppKey string
	Site   string
}

// Load resolves the configuration from flags, environment, and the config
// file, in that order of priority. A missing config file is not an error;
// a malformed one is.
func Load(overrides Overrides) (*Config, error) {
	cfg := &Config{}

	if path, err := FilePath(); err == nil {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	applyOverrides(cfg, overrides)

	if cfg.Site == "" {
		cfg.Site = DefaultSite
	}
	if err := errors.ValidateSite(cfg.Site); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireKeys validates that both credentials are present. Commands that
// talk to the API call this; compile and validate do not.
func (c *Config) RequireKeys() error {
	if c.APIKey == "" || c.AppKey == "" {
		return errors.New(errors.ErrCodeInvalidConfig,
			"missing required credentials: set %s and %s (or --api-key/--app-key)",
			EnvAPIKey, EnvAppKey)
	}
	return nil
}

// FilePath returns the config file location using the XDG convention
// (~/.config/doghouse/config.toml). XDG_CONFIG_HOME is honored when set.
func FilePath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "doghouse", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "doghouse", "config.toml"), nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvAppKey); v != "" {
		cfg.AppKey = v
	}
	if v := os.Getenv(EnvSite); v != "" {
		cfg.Site = v
	}
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.APIKey != "" {
		cfg.APIKey = o.APIKey
	}
	if o.AppKey != "" {
		cfg.AppKey = o.AppKey
	}
	if o.Site != "" {
		cfg.Site = o.Site
	}
}
