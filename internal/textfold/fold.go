// Package textfold normalises food names for accent-insensitive matching.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold prepares s for containment matching:
//  1. Lowercase
//  2. NFD decomposition, then strip nonspacing marks (removes accents, ñ → n)
//  3. Replace non-letter/non-digit with space
//  4. Collapse runs of spaces, trim
func Fold(s string) string {
	result := StripAccents(s)

	var sb strings.Builder
	sb.Grow(len(result))
	for _, r := range result {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// StripAccents lowercases s and removes diacritics, leaving punctuation intact.
func StripAccents(s string) string {
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
