package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in
// the working directory is merged in first without overriding variables
// already exported.
func parseEnv(cfg *Config) {
	// best effort: a missing .env is the normal case
	_ = godotenv.Load()

	if v := os.Getenv("DESKHUB_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DESKHUB_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("DESKHUB_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("DESKHUB_ONLINE_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
