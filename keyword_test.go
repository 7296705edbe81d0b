package aliscout_test

import (
	"testing"

	"github.com/kofiasare/aliscout"
	"github.com/stretchr/testify/assert"
)

func TestFormatKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		category string
		query    string
	}{
		{
			name:     "single word",
			raw:      "dog",
			category: "dog",
			query:    "dog",
		},
		{
			name:     "two words",
			raw:      "male shoes",
			category: "male shoes",
			query:    "male+shoes",
		},
		{
			name:     "uppercase and surrounding whitespace",
			raw:      "  Male Shoes  ",
			category: "male shoes",
			query:    "male+shoes",
		},
		{
			name:     "punctuation stripped",
			raw:      "men's running-shoes!",
			category: "mens runningshoes",
			query:    "mens+runningshoes",
		},
		{
			name:     "internal whitespace runs collapse",
			raw:      "male \t  shoes",
			category: "male shoes",
			query:    "male+shoes",
		},
		{
			name:     "digits survive",
			raw:      "iphone 15 case",
			category: "iphone 15 case",
			query:    "iphone+15+case",
		},
		{
			name:     "only punctuation normalizes to zero",
			raw:      "?!...",
			category: "",
			query:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kw := aliscout.FormatKeyword(tt.raw)
			assert.Equal(t, tt.category, kw.Category)
			assert.Equal(t, tt.query, kw.Query)
			assert.Equal(t, tt.category == "", kw.IsZero())
		})
	}
}

func TestFormatKeyword_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"dog", "  Male  Shoes ", "men's running-shoes!", "iphone 15 case"}
	for _, raw := range inputs {
		once := aliscout.FormatKeyword(raw)
		twice := aliscout.FormatKeyword(once.Category)
		assert.Equal(t, once, twice, "normalizing %q twice should be stable", raw)
	}
}
