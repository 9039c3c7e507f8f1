package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Finz-2025/finz-coach/internal/common"
)

// Config holds runtime settings for the Finz coach client.
//
// Fields:
//   - BaseURL: Coach API base URL, including the /api prefix.
//   - AccessToken / AccessTokenHeader: static credential injected into every request.
//   - RequestTimeout: per-request HTTP timeout.
//   - UserID: user whose conversation is mounted when no profile overrides it.
//   - DisplayOffset: fixed UTC offset used to group and display messages.
//   - ProfileDB: path of the SQLite key-value profile store.
//   - LogLevel / LogFormat: slog level (debug|info|warn|error) and handler (text|json).
//   - MetricsAddr: if set, Prometheus metrics are served on this address.
type Config struct {
	BaseURL           string
	AccessToken       string
	AccessTokenHeader string
	RequestTimeout    time.Duration
	UserID            int64
	DisplayOffset     time.Duration
	ProfileDB         string
	LogLevel          string
	LogFormat         string
	MetricsAddr       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://finz-site.shop/api"
	c.AccessTokenHeader = common.AccessTokenHeaderName
	c.RequestTimeout = 10 * time.Second
	c.UserID = common.DefaultUserID
	c.DisplayOffset = 9 * time.Hour
	c.ProfileDB = "coach.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load constructs a Config, applies defaults, then overlays the environment
// (including a .env file), the config file named by -c/-config and finally
// command-line flags. Later sources take precedence over earlier ones.
func Load(args []string, lookup LookupFunc) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env", lookup); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
