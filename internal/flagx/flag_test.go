package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "coach.yaml", "-a", "https://example.test"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "coach.yaml"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-u", "3"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-u", "-l", "debug"},
			allowedFlags: []string{"-u"},
			want:         []string{"-u"},
		},
		{
			name:         "multiple allowed flags kept in order",
			args:         []string{"-a", "https://api.test", "-c", "c.json", "--other", "x", "-u", "7"},
			allowedFlags: []string{"-a", "-u"},
			want:         []string{"-a", "https://api.test", "-u", "7"},
		},
		{
			name:         "terminator stops scanning",
			args:         []string{"-u", "2", "--", "-u", "3"},
			allowedFlags: []string{"-u"},
			want:         []string{"-u", "2"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	t.Run("short -c with value", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigFileFlag([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config with equals", func(t *testing.T) {
		assert.Equal(t, "/path/long.yaml", ConfigFileFlag([]string{"-config=/path/long.yaml"}))
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		assert.Empty(t, ConfigFileFlag([]string{"-x", "1", "-u", "2"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "/2.json", ConfigFileFlag([]string{"-c", "/1.json", "-config", "/2.json"}))
	})
}
