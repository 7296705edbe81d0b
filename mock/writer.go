package mock

import (
	"context"

	"github.com/kofiasare/aliscout"
)

var _ aliscout.ListingWriter = (*ListingWriter)(nil)

// ListingWriter is a mock implementation of aliscout.ListingWriter.
type ListingWriter struct {
	SaveFn func(ctx context.Context, listings []*aliscout.Listing, category string) (string, error)
}

func (w *ListingWriter) Save(ctx context.Context, listings []*aliscout.Listing, category string) (string, error) {
	return w.SaveFn(ctx, listings, category)
}
