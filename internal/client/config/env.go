package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

const envPrefix = "FINZ_"

// parseEnv overlays cfg with FINZ_* variables. Values from the process
// environment win over the ones found in dotenvPath; a missing dotenv file
// is not an error.
func parseEnv(cfg *Config, dotenvPath string, lookup LookupFunc) error {
	dotenv, err := godotenv.Read(dotenvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", dotenvPath, err)
		}
		dotenv = map[string]string{}
	}

	get := func(name string) (string, bool) {
		key := envPrefix + name
		if lookup != nil {
			if v, ok := lookup(key); ok && v != "" {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if v, ok := get("BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := get("ACCESS_TOKEN"); ok {
		cfg.AccessToken = v
	}
	if v, ok := get("ACCESS_TOKEN_HEADER"); ok {
		cfg.AccessTokenHeader = v
	}
	if v, ok := get("PROFILE_DB"); ok {
		cfg.ProfileDB = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := get("METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}

	if v, ok := get("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := get("DISPLAY_OFFSET"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sDISPLAY_OFFSET: %w", envPrefix, err)
		}
		cfg.DisplayOffset = d
	}
	if v, ok := get("USER_ID"); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sUSER_ID: %w", envPrefix, err)
		}
		cfg.UserID = id
	}

	return nil
}
