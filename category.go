package aliscout

import (
	"context"
	"time"
)

// Category represents a normalized search keyword, stored once and
// referenced by many products.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the category contains invalid fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	return nil
}

// CategoryService represents a service for managing categories.
type CategoryService interface {
	// ResolveOrCreate inserts a category with the given name, or if the
	// name already exists, fetches the existing row instead. Calling it
	// N times with the same name yields exactly one stored row and the
	// same ID every time; the duplicate path is never surfaced as an
	// error.
	ResolveOrCreate(ctx context.Context, name string) (*Category, error)

	// FindCategoryByName retrieves a category by its exact name.
	// Returns ENOTFOUND if the category does not exist.
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
}
