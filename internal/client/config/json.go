package config

import (
	"encoding/json"
	"os"

	"github.com/ysemenovs/deskhub/internal/flagx"
	"github.com/ysemenovs/deskhub/internal/timex"
)

// jsonConfig is the JSON-file DTO. Durations accept "15s" strings or
// integer nanoseconds via timex.Duration.
type jsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DataFile            string         `json:"data_file"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJSON overlays values from the file named by -c/-config, if any.
// Read or parse failures panic: a config file that was explicitly pointed
// at but cannot be used is not something to silently skip.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
