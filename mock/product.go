package mock

import (
	"context"

	"github.com/kofiasare/aliscout"
)

var _ aliscout.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of aliscout.ProductService.
type ProductService struct {
	CreateProductsFn func(ctx context.Context, categoryID int64, listings []*aliscout.Listing) (int, error)
	FindListingsFn   func(ctx context.Context, keyword string) ([]*aliscout.ProductListing, error)
}

func (s *ProductService) CreateProducts(ctx context.Context, categoryID int64, listings []*aliscout.Listing) (int, error) {
	return s.CreateProductsFn(ctx, categoryID, listings)
}

func (s *ProductService) FindListings(ctx context.Context, keyword string) ([]*aliscout.ProductListing, error) {
	return s.FindListingsFn(ctx, keyword)
}
