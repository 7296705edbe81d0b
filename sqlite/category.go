package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kofiasare/aliscout"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ aliscout.CategoryService = (*CategoryService)(nil)

// CategoryService implements aliscout.CategoryService using SQLite.
type CategoryService struct {
	db *DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *DB) *CategoryService {
	return &CategoryService{db: db}
}

// ResolveOrCreate inserts a category, or fetches the existing row if the
// name is already taken. The duplicate path is expected and never surfaced.
func (s *CategoryService) ResolveOrCreate(ctx context.Context, name string) (*aliscout.Category, error) {
	// Truncate to the stored RFC3339 precision so the returned value
	// matches what a later lookup reads back.
	category := &aliscout.Category{
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, created_at)
		VALUES (?, ?)
		RETURNING id
	`, category.Name, category.CreatedAt.Format(time.RFC3339)).Scan(&category.ID)

	if err == nil {
		return category, nil
	}
	if !errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return nil, err
	}

	// Name already exists; resolve to the stored row.
	return s.FindCategoryByName(ctx, name)
}

// FindCategoryByName retrieves a category by its exact name.
func (s *CategoryService) FindCategoryByName(ctx context.Context, name string) (*aliscout.Category, error) {
	var category aliscout.Category
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM categories
		WHERE name = ?
	`, name).Scan(&category.ID, &category.Name, &createdAt)

	if err == sql.ErrNoRows {
		return nil, aliscout.Errorf(aliscout.ENOTFOUND, "category not found")
	}
	if err != nil {
		return nil, err
	}

	category.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &category, nil
}
