package index

import (
	"strings"
	"unicode/utf8"
)

// Tokenize converts free text into normalized keyword tokens.
// Rules:
//  1. Lowercase the input.
//  2. Replace every rune that is not an ASCII alphanumeric, underscore,
//     or Hangul syllable with a space.
//  3. Split on runs of whitespace.
//  4. Discard tokens shorter than 2 runes.
//
// Duplicates are retained in first-occurrence order; the index builder
// treats the list as a set via map insertion.
func Tokenize(text string) []string {
	if len(text) == 0 {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if isTokenRune(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	parts := strings.Fields(cleaned)

	var tokens []string
	for _, part := range parts {
		if utf8.RuneCountInString(part) >= 2 {
			tokens = append(tokens, part)
		}
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// isTokenRune reports whether a rune survives normalization. The set mirrors
// the content this index serves: ASCII word characters plus the Hangul
// syllable block (U+AC00..U+D7A3).
func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	case r >= 0xAC00 && r <= 0xD7A3:
		return true
	}
	return false
}
