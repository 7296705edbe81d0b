package mock

import "github.com/kofiasare/aliscout"

var _ aliscout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of aliscout.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*aliscout.Listing, error)
}

func (e *Extractor) Extract(html string) ([]*aliscout.Listing, error) {
	return e.ExtractFn(html)
}
