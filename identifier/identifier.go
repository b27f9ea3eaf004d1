package identifier

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmpty is returned when a name holds no identifier-legal
// rune.
var ErrEmpty = errors.New("no identifier-legal characters")

// Sanitize returns the identifier-safe form of raw. Runes
// other than letters, decimal digits and '_' are dropped. A
// leading digit gets a '_' prefix. Applying Sanitize to its
// own output returns the same string.
func Sanitize(raw string) (string, error) {
	const errCtx = "sanitizing identifier"

	var sb strings.Builder

	sb.Grow(len(raw) + 1)

	for _, r := range raw {
		if legal(r) {
			sb.WriteRune(r)
		}
	}

	out := sb.String()
	if out == "" {
		return "", fmt.Errorf("%s %q: %w", errCtx, raw, ErrEmpty)
	}

	if first, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(first) {
		out = "_" + out
	}

	return out, nil
}

// Valid reports whether s is already identifier-safe, that
// is Sanitize(s) would return s unchanged.
func Valid(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if !legal(r) {
			return false
		}

		if i == 0 && unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func legal(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
