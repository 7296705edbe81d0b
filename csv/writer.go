// Package csv provides a CSV flat-file sink for collected listings.
package csv

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/kofiasare/aliscout"
)

// FileName returns the deterministic snapshot file name for a category.
// The category "male shoes" maps to "aliexpress_male_shoes.csv".
func FileName(category string) string {
	return "aliexpress_" + strings.ReplaceAll(category, " ", "_") + ".csv"
}

// header is the column order of a snapshot file.
var header = []string{"category", "name", "item_url", "image_url", "price", "store"}

// Ensure Writer implements aliscout.ListingWriter at compile time.
var _ aliscout.ListingWriter = (*Writer)(nil)

// Writer writes one CSV snapshot per run to a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Save writes the listings as a CSV file named from the category and
// returns the path of the written file. An existing snapshot for the same
// category is overwritten.
func (w *Writer) Save(ctx context.Context, listings []*aliscout.Listing, category string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if category == "" {
		return "", aliscout.Errorf(aliscout.EINVALID, "snapshot category required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, FileName(category))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", err
	}
	for _, l := range listings {
		if err := cw.Write([]string{l.Category, l.Name, l.ItemURL, l.ImageURL, l.Price, l.Store}); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	return path, nil
}
