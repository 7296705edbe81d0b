package aliscout

import (
	"context"
	"time"
)

// Product is the persisted form of a Listing: the category string is
// replaced by a foreign key to its Category row. Products are created in
// bulk per ingest run and never updated or deleted by this application.
type Product struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"categoryId"`
	Name       string    `json:"name"`
	ItemURL    string    `json:"itemUrl"`
	ImageURL   string    `json:"imageUrl"`
	Price      string    `json:"price"`
	Store      string    `json:"store"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProductListing is a product joined with its category name, as returned by
// the keyword query path.
type ProductListing struct {
	CategoryName string `json:"categoryName"`
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	ItemURL      string `json:"itemUrl"`
	ImageURL     string `json:"imageUrl"`
	Price        string `json:"price"`
	Store        string `json:"store"`
}

// ProductService represents a service for persisting and querying products.
type ProductService interface {
	// CreateProducts bulk-inserts the listings under the given category
	// inside a single transaction. The batch is all-or-nothing: any
	// failure rolls back every row and is surfaced to the caller.
	// Returns the number of rows inserted on success.
	CreateProducts(ctx context.Context, categoryID int64, listings []*Listing) (int, error)

	// FindListings retrieves products joined with their category name,
	// filtered by exact category-name match. The keyword must already be
	// in its normalized stored form (see FormatKeyword). Returns an
	// empty slice, never an error, when no rows match.
	FindListings(ctx context.Context, keyword string) ([]*ProductListing, error)
}
