package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/kofiasare/aliscout"
)

// Compile-time interface verification.
var _ aliscout.ProductService = (*ProductService)(nil)

// ProductService implements aliscout.ProductService using SQLite.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProducts bulk-inserts listings under the given category in a single
// transaction. The batch is all-or-nothing: any failure rolls back every row.
func (s *ProductService) CreateProducts(ctx context.Context, categoryID int64, listings []*aliscout.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	// Reject the batch before opening the transaction; a listing missing
	// a required field is a parse failure, not a partial record.
	for _, listing := range listings {
		if err := listing.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (cat_id, name, item_url, image_url, price, store, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for _, listing := range listings {
		if _, err := stmt.ExecContext(ctx,
			categoryID, listing.Name, listing.ItemURL, listing.ImageURL,
			listing.Price, listing.Store, createdAt); err != nil {
			return 0, fmt.Errorf("failed to insert product %q: %w", listing.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}

	return len(listings), nil
}

// FindListings retrieves products joined with their category name, filtered
// by exact category-name match on the normalized keyword.
func (s *ProductService) FindListings(ctx context.Context, keyword string) ([]*aliscout.ProductListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT categories.name, products.id, products.name,
		       products.item_url, products.image_url, products.price, products.store
		FROM products
		LEFT JOIN categories ON products.cat_id = categories.id
		WHERE categories.name = ?
		ORDER BY products.id
	`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []*aliscout.ProductListing{}
	for rows.Next() {
		var pl aliscout.ProductListing
		if err := rows.Scan(&pl.CategoryName, &pl.ProductID, &pl.ProductName,
			&pl.ItemURL, &pl.ImageURL, &pl.Price, &pl.Store); err != nil {
			return nil, err
		}
		listings = append(listings, &pl)
	}

	return listings, rows.Err()
}
