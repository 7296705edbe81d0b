package aliscout

import (
	"strings"
	"unicode"
)

// Keyword is a search keyword in its two normalized forms. Category is the
// stored form (single spaces between words) and Query is the URL form (words
// joined with "+"). Both derive from the same normalization; keeping them
// together prevents ingest and query paths from drifting apart.
type Keyword struct {
	Category string
	Query    string
}

// IsZero reports whether the keyword normalized to nothing.
func (k Keyword) IsZero() bool {
	return k.Category == ""
}

// FormatKeyword normalizes a raw search keyword. It strips every rune that
// is not alphanumeric or whitespace, lowercases the result, and collapses
// internal whitespace runs so that words are separated by exactly one
// separator. FormatKeyword is pure and idempotent.
func FormatKeyword(raw string) Keyword {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(strings.ToLower(b.String()))
	return Keyword{
		Category: strings.Join(words, " "),
		Query:    strings.Join(words, "+"),
	}
}
