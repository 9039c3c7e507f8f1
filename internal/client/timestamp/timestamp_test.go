package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToLocal(t *testing.T) {
	tests := []struct {
		in   string
		want Stamp
	}{
		{"2025-10-30T18:23:16.640Z", Stamp{"2025-10-31", "03:23"}},
		{"2025-10-30T18:23:16.640", Stamp{"2025-10-31", "03:23"}},
		{"2025-10-30 18:23:16", Stamp{"2025-10-31", "03:23"}},
		{"2025-10-30T10:05:00Z", Stamp{"2025-10-30", "19:05"}},
		{"2025-12-31T15:00:00Z", Stamp{"2026-01-01", "00:00"}},
		{"2025-10-30T18:23:16+09:00", Stamp{"2025-10-30", "18:23"}},
		{"2025-10-30T01:00:00-02:00", Stamp{"2025-10-30", "12:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SplitToLocal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitToLocal_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "2025-13-01T00:00:00Z"} {
		_, err := SplitToLocal(in)
		assert.Error(t, err, in)
	}
}

func TestSplitToLocal_IgnoresHostZone(t *testing.T) {
	prev := time.Local
	t.Cleanup(func() { time.Local = prev })
	time.Local = time.FixedZone("EST", -5*3600)

	got, err := SplitToLocal("2025-10-30T18:23:16.640Z")
	require.NoError(t, err)
	assert.Equal(t, Stamp{"2025-10-31", "03:23"}, got)
}

func TestNormalizer_NowLocal(t *testing.T) {
	fixed := time.Date(2025, 10, 30, 23, 59, 30, 0, time.UTC)
	n := New(DefaultOffset, WithClock(func() time.Time { return fixed }))

	assert.Equal(t, Stamp{"2025-10-31", "08:59"}, n.NowLocal())
	assert.Equal(t, "KST", n.Location().String())
}

func TestNormalizer_CustomOffset(t *testing.T) {
	n := New(-3*time.Hour - 30*time.Minute)
	got, err := n.SplitToLocal("2025-10-30T02:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, Stamp{"2025-10-29", "22:30"}, got)
	assert.Equal(t, "UTC-03:30", n.Location().String())
}
