package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"under limit", DefaultMaxTokenSize - 1, false},
		{"exact limit", DefaultMaxTokenSize, false},
		{"over limit", DefaultMaxTokenSize + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("a", tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSanitizeInput_DrawingTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"point", "10,20", "10,20"},
		{"relative point", "@5,-3.5", "@5,-3.5"},
		{"command alias", "co", "co"},
		{"text content", "Beam B1 axis A", "Beam B1 axis A"},
		{"unicode text", "Kolon Ø30 ağırlık", "Kolon Ø30 ağırlık"},
		{"safe controls", "Line1\nLine2\tTabbed", "Line1\nLine2\tTabbed"},
		{"ansi colour", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"null byte", "Null\x00Byte", "NullByte"},
		{"bell", "Ding\x07", "Ding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxTokenSize, "10")

	_, err := SanitizeInput("12345678901")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = SanitizeInput("12345")
	assert.NoError(t, err)

	t.Run("invalid override keeps the default", func(t *testing.T) {
		t.Setenv(EnvMaxTokenSize, "-1")
		_, err := SanitizeInput(strings.Repeat("a", DefaultMaxTokenSize))
		assert.NoError(t, err)
	})
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
