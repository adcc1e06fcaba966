package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMetaDescriptionLength is the usual search snippet limit.
const DefaultMetaDescriptionLength = 160

// Slug lower-cases s, folds accents, keeps [a-z0-9 -], turns whitespace runs
// into single hyphens and trims hyphens from both ends.
func Slug(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	dash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == ' ' || r == '-' || r == '\t' || r == '\n':
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Truncate cuts s to n runes and appends "..." when it was longer.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// MetaTitle joins a page title with the site title as "title | site".
func MetaTitle(title, site string) string {
	if site == "" {
		return title
	}
	return title + " | " + site
}

// MetaDescription truncates desc to limit runes, DefaultMetaDescriptionLength when limit <= 0.
func MetaDescription(desc string, limit int) string {
	if limit <= 0 {
		limit = DefaultMetaDescriptionLength
	}
	return Truncate(desc, limit)
}
