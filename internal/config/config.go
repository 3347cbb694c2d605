package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultRequestTimeout is the per-fetch timeout applied when the
	// config file does not set request_timeout_seconds.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultMaxConcurrency bounds simultaneous status requests.
	DefaultMaxConcurrency = 8

	// DefaultStatusBaseURL is the public status API queried per server.
	DefaultStatusBaseURL = "https://api.mcsrvstat.us/3"

	// DefaultWatchRefreshInterval is how often the watch view re-runs
	// the lookup. Kept coarse to stay polite to the status API.
	DefaultWatchRefreshInterval = 15 * time.Second
)

// Server identifies one monitored Minecraft server. Name is a display
// label; Address is the identity used for status lookups.
type Server struct {
	Name    string `mapstructure:"name" yaml:"name" json:"name"`
	Address string `mapstructure:"address" yaml:"address" json:"address"`
}

// StatusAPIConfig holds status provider settings.
type StatusAPIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
}

// WatchConfig holds settings for the live watch view.
type WatchConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval" yaml:"refresh_interval" json:"refresh_interval"`
}

// Config is the runtime configuration for mc-locate. It is built once at
// startup, validated, and passed by value into the lookup engine; nothing
// in the core reads configuration ambiently.
type Config struct {
	Servers               []Server        `mapstructure:"servers" yaml:"servers" json:"servers"`
	RequestTimeoutSeconds int             `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds" json:"request_timeout_seconds"`
	MaxConcurrency        int             `mapstructure:"max_concurrency" yaml:"max_concurrency" json:"max_concurrency"`
	StatusAPI             StatusAPIConfig `mapstructure:"status_api" yaml:"status_api" json:"status_api"`
	Watch                 WatchConfig     `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// Default returns a Config with sensible default values and no servers.
func Default() Config {
	return Config{
		Servers:               nil,
		RequestTimeoutSeconds: int(DefaultRequestTimeout / time.Second),
		MaxConcurrency:        DefaultMaxConcurrency,
		StatusAPI: StatusAPIConfig{
			BaseURL: DefaultStatusBaseURL,
		},
		Watch: WatchConfig{
			RefreshInterval: DefaultWatchRefreshInterval,
		},
	}
}

// FromViper builds a Config from the given viper instance, filling gaps
// with defaults and validating the result.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse configuration: %w", err)
	}

	// Unmarshal overwrites defaults with zero values for absent keys.
	if cfg.RequestTimeoutSeconds == 0 && !v.IsSet("request_timeout_seconds") {
		cfg.RequestTimeoutSeconds = int(DefaultRequestTimeout / time.Second)
	}
	if cfg.MaxConcurrency == 0 && !v.IsSet("max_concurrency") {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.StatusAPI.BaseURL == "" {
		cfg.StatusAPI.BaseURL = DefaultStatusBaseURL
	}
	if cfg.Watch.RefreshInterval == 0 {
		cfg.Watch.RefreshInterval = DefaultWatchRefreshInterval
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RequestTimeout returns the per-fetch timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate checks the configuration for structural problems. Duplicate
// server names and addresses are logged as warnings, not rejected: a name
// is only a display label, and a duplicate address is queried twice rather
// than silently deduplicated.
func (c Config) Validate() error {
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", c.RequestTimeoutSeconds)
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be positive, got %d", c.MaxConcurrency)
	}
	if c.StatusAPI.BaseURL == "" {
		return fmt.Errorf("status_api.base_url must not be empty")
	}

	seenNames := make(map[string]bool, len(c.Servers))
	seenAddrs := make(map[string]bool, len(c.Servers))
	for i, srv := range c.Servers {
		if srv.Name == "" {
			return fmt.Errorf("servers[%d]: name must not be empty", i)
		}
		if srv.Address == "" {
			return fmt.Errorf("servers[%d] (%s): address must not be empty", i, srv.Name)
		}

		name := strings.ToLower(srv.Name)
		if seenNames[name] {
			slog.Warn("duplicate server name in configuration", "name", srv.Name)
		}
		seenNames[name] = true

		addr := strings.ToLower(srv.Address)
		if seenAddrs[addr] {
			slog.Warn("duplicate server address in configuration, it will be queried twice", "address", srv.Address)
		}
		seenAddrs[addr] = true
	}

	return nil
}
