package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxTokenSize bounds one drawing token in bytes. Text content
	// is the longest token a command accepts; points and keywords are a few
	// bytes.
	DefaultMaxTokenSize = 4096
	// EnvMaxTokenSize overrides DefaultMaxTokenSize.
	EnvMaxTokenSize = "MUGINCAD_MAX_TOKEN_SIZE"
)

var (
	ErrInputTooLarge = errors.New("drawing token exceeds maximum size")
	ErrInvalidUTF8   = errors.New("drawing token is not valid UTF-8")
)

// SanitizeInput prepares one drawing token (a command name, point, number,
// keyword or text content) for Drawing.Submit. It rejects oversized or
// malformed tokens and drops terminal control sequences such as ESC, NUL
// and BEL, which would otherwise end up inside Text entities. Newline, tab
// and carriage return survive.
func SanitizeInput(token string) (string, error) {
	limit := maxTokenSize()
	if len(token) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(token), limit)
	}
	if !utf8.ValidString(token) {
		return "", ErrInvalidUTF8
	}
	if strings.IndexFunc(token, isUnsafeControl) < 0 {
		return token, nil
	}

	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if !isUnsafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isUnsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

func maxTokenSize() int {
	if val := os.Getenv(EnvMaxTokenSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxTokenSize
}
