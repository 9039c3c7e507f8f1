package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Finz-2025/finz-coach/internal/flagx"
	"github.com/Finz-2025/finz-coach/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files. Only the
// fields present in the file are copied into the runtime Config.
type FileConfig struct {
	BaseURL           string          `json:"base_url" yaml:"base_url"`
	AccessToken       string          `json:"access_token" yaml:"access_token"`
	AccessTokenHeader string          `json:"access_token_header" yaml:"access_token_header"`
	RequestTimeout    timex.Duration  `json:"request_timeout" yaml:"request_timeout"`
	UserID            int64           `json:"user_id" yaml:"user_id"`
	DisplayOffset     *timex.Duration `json:"display_offset" yaml:"display_offset"`
	ProfileDB         string          `json:"profile_db" yaml:"profile_db"`
	LogLevel          string          `json:"log_level" yaml:"log_level"`
	LogFormat         string          `json:"log_format" yaml:"log_format"`
	MetricsAddr       string          `json:"metrics_addr" yaml:"metrics_addr"`
}

// parseFile overlays cfg with the file named by -c/-config in args. With no
// such flag it does nothing.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return err
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.AccessToken, fc.AccessToken)
	setString(&cfg.AccessTokenHeader, fc.AccessTokenHeader)
	setString(&cfg.ProfileDB, fc.ProfileDB)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.MetricsAddr, fc.MetricsAddr)

	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.UserID != 0 {
		cfg.UserID = fc.UserID
	}
	// A zero offset (UTC display) is a legitimate choice, hence the pointer.
	if fc.DisplayOffset != nil {
		cfg.DisplayOffset = fc.DisplayOffset.Duration
	}
}
