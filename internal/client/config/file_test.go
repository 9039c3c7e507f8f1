package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndFormats(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := writeTemp(t, dir, "coach.json", `{
			"base_url": "https://json.test/api",
			"access_token": "j",
			"request_timeout": "15s",
			"display_offset": "0s"
		}`)
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseFile(cfg, []string{"-c", path}))

		assert.Equal(t, "https://json.test/api", cfg.BaseURL)
		assert.Equal(t, "j", cfg.AccessToken)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Duration(0), cfg.DisplayOffset, "explicit zero offset is kept")
		assert.Equal(t, "coach.db", cfg.ProfileDB, "absent fields keep defaults")
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTemp(t, dir, "coach.yaml", "base_url: https://yaml.test/api\nuser_id: 9\nlog_format: json\n")
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseFile(cfg, []string{"-config", path}))

		assert.Equal(t, "https://yaml.test/api", cfg.BaseURL)
		assert.Equal(t, int64(9), cfg.UserID)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 9*time.Hour, cfg.DisplayOffset)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{BaseURL: "https://keep.test"}
		require.NoError(t, parseFile(cfg, nil))
		assert.Equal(t, "https://keep.test", cfg.BaseURL)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := writeTemp(t, dir, "bad.json", `{ this is not valid json`)
		require.Error(t, parseFile(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		require.Error(t, parseFile(&Config{}, []string{"-c", filepath.Join(dir, "absent.json")}))
	})
}
