// Package config loads runtime configuration. Settings come from an
// optional TOML file with environment variables layered on top, so
// provider credentials can stay out of the file entirely. A .env file
// in the working directory is honoured for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Providers ProvidersConfig `toml:"providers"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// StaticDir is served with an index.html fallback. Empty disables
	// static serving.
	StaticDir string `toml:"static_dir"`

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DatabaseConfig configures the user store.
type DatabaseConfig struct {
	// Path is the SQLite data directory. Empty uses the store default.
	Path string `toml:"path"`
}

// ProvidersConfig carries one credential per provider. A missing
// credential leaves that provider registered but inert.
type ProvidersConfig struct {
	Eventbrite   Credential `toml:"eventbrite"`
	Ticketmaster Credential `toml:"ticketmaster"`
	Yelp         Credential `toml:"yelp"`
	Meetup       Credential `toml:"meetup"`
}

// Credential is a single provider API credential.
type Credential struct {
	APIKey string `toml:"api_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":5000",
			StaticDir: "static",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:3000",
			},
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path
// (if given), then environment overrides. A .env file is loaded first
// when present.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers environment variables over the current values.
func (c *Config) applyEnv() {
	if v := os.Getenv("EVENTSCOUT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("EVENTSCOUT_STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		c.Server.AllowedOrigins = origins
	}
	if v := os.Getenv("EVENTSCOUT_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("EVENTBRITE_API_KEY"); v != "" {
		c.Providers.Eventbrite.APIKey = v
	}
	if v := os.Getenv("TICKETMASTER_API_KEY"); v != "" {
		c.Providers.Ticketmaster.APIKey = v
	}
	if v := os.Getenv("YELP_API_KEY"); v != "" {
		c.Providers.Yelp.APIKey = v
	}
	if v := os.Getenv("MEETUP_API_KEY"); v != "" {
		c.Providers.Meetup.APIKey = v
	}
}
