// Package config assembles the CLI runtime settings from layered sources:
// defaults, then environment (including a .env file when present), then an
// optional JSON file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the DeskHub CLI.
type Config struct {
	// APIBaseURL is the DeskHub backend root, e.g. "http://localhost:3000/api".
	APIBaseURL string

	// RequestTimeout bounds every single API round trip.
	RequestTimeout time.Duration

	// DataFile is the sqlite file backing the local fallback store.
	DataFile string

	// OnlineCheckInterval is how often the CLI probes server liveness.
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 15 * time.Second
	c.DataFile = "deskhub.db"
	c.OnlineCheckInterval = 5 * time.Second
}

// LoadConfig builds the effective configuration.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
