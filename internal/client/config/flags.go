package config

import (
	"flag"
	"os"
	"time"

	"github.com/ysemenovs/deskhub/internal/flagx"
)

// parseFlags overlays selected fields from command-line flags:
//
//	-a string   API base URL
//	-t int      request timeout in seconds
//	-d string   local data file
//	-i int      online check interval in seconds
//
// Arguments are pre-filtered so flags owned by other components pass
// through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-i"})

	fs := flag.NewFlagSet("deskhub", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (seconds)")
	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "local data file")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}
