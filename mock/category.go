package mock

import (
	"context"

	"github.com/kofiasare/aliscout"
)

var _ aliscout.CategoryService = (*CategoryService)(nil)

// CategoryService is a mock implementation of aliscout.CategoryService.
type CategoryService struct {
	ResolveOrCreateFn    func(ctx context.Context, name string) (*aliscout.Category, error)
	FindCategoryByNameFn func(ctx context.Context, name string) (*aliscout.Category, error)
}

func (s *CategoryService) ResolveOrCreate(ctx context.Context, name string) (*aliscout.Category, error) {
	return s.ResolveOrCreateFn(ctx, name)
}

func (s *CategoryService) FindCategoryByName(ctx context.Context, name string) (*aliscout.Category, error) {
	return s.FindCategoryByNameFn(ctx, name)
}
