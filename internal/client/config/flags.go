package config

import (
	"flag"
	"io"
	"time"

	"github.com/Finz-2025/finz-coach/internal/flagx"
)

var knownFlags = []string{"-a", "-k", "-t", "-u", "-d", "-l", "-m"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   Coach API base URL
//	-k string   access token
//	-t int      request timeout in seconds
//	-u int      user id
//	-d string   profile database path
//	-l string   log level
//	-m string   metrics listen address
//
// args are filtered with flagx.FilterArgs first, so flags owned by other
// parsers (e.g. -c) do not cause errors here.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("coach", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "Coach API base URL")
	fs.StringVar(&cfg.AccessToken, "k", cfg.AccessToken, "access token")
	fs.Int64Var(&cfg.UserID, "u", cfg.UserID, "user id")
	fs.StringVar(&cfg.ProfileDB, "d", cfg.ProfileDB, "profile database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address, e.g. :9091")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
