package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe key from a title or tag name:
//   - diacritics are folded ("limón" -> "limon")
//   - the result is lowercased
//   - every run of characters outside [a-z0-9] becomes a single hyphen
//   - leading and trailing hyphens are dropped
//
// The result may be empty when s has no alphanumeric characters.
func Slugify(s string) string {
	// transform.Chain keeps per-use state, so it is built per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	gap := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}

// CategorySlug lowercases a category name and joins its words with hyphens.
func CategorySlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
