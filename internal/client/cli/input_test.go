package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(s string) *bufio.Scanner { return bufio.NewScanner(strings.NewReader(s)) }

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(scan("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_LastLineWithoutNewline(t *testing.T) {
	got, err := GetSimpleText(scan("lastline"), "Name?", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	_, err := GetSimpleText(scan(""), "Name?", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"stops at empty line", "a\nb\n\nc\n", "a\nb"},
		{"stops at eof", "a\r\nb", "a\nb"},
		{"empty", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetMultiline(scan(tt.in), "Enter text", io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetSecret(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte(" s3cret \n"), nil }
	var out bytes.Buffer
	got, err := GetSecret(0, "Access token", &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Access token: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetSecret(0, "Access token", io.Discard)
	assert.EqualError(t, err, "no tty")
}

func TestPromptAccessToken_NotATerminal(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(int) bool { return false }

	got, err := PromptAccessToken(io.Discard)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTerminalTheme(t *testing.T) {
	theme, width := terminalTheme(&bytes.Buffer{})
	assert.True(t, theme.Plain)
	assert.Zero(t, width)
}
