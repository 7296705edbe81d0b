package aliscout

// Extractor extracts product listings from rendered search result HTML.
type Extractor interface {
	// Extract parses the result tiles on one page and returns them in
	// DOM encounter order. The Category field is left blank; the
	// collection loop stamps it. A tile missing any required field is
	// skipped rather than failing the page.
	Extract(html string) ([]*Listing, error)
}
