package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := writeTemp(t, dir, ".env", "FINZ_ACCESS_TOKEN=from-dotenv\nFINZ_LOG_LEVEL=debug\nFINZ_DISPLAY_OFFSET=2h\n")

	env := map[string]string{
		"FINZ_LOG_LEVEL":       "warn",
		"FINZ_REQUEST_TIMEOUT": "4s",
		"FINZ_USER_ID":         "12",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg, dotenv, lookup))

	assert.Equal(t, "from-dotenv", cfg.AccessToken)
	assert.Equal(t, "warn", cfg.LogLevel, "process env wins over .env")
	assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Hour, cfg.DisplayOffset)
	assert.Equal(t, int64(12), cfg.UserID)
}

func Test_parseEnv_MissingDotenvIsFine(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, parseEnv(cfg, filepath.Join(t.TempDir(), "none.env"), nil))
}

func Test_parseEnv_BadValues(t *testing.T) {
	for _, kv := range [][2]string{
		{"FINZ_USER_ID", "x"},
		{"FINZ_REQUEST_TIMEOUT", "soon"},
		{"FINZ_DISPLAY_OFFSET", "9"},
	} {
		lookup := func(k string) (string, bool) {
			if k == kv[0] {
				return kv[1], true
			}
			return "", false
		}
		err := parseEnv(&Config{}, filepath.Join(t.TempDir(), "none.env"), lookup)
		assert.Error(t, err, kv[0])
	}
}
