package pix

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize removes accents and every character other than ASCII letters,
// digits and spaces, then truncates the result to maxLength characters.
// Truncation is silent.
func Normalize(text string, maxLength int) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, text)
	if err != nil {
		decomposed = text
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if b.Len() >= maxLength {
			break
		}
		if isPlainRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isPlainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return r == ' '
}
