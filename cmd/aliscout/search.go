package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kofiasare/aliscout"
)

// Run executes the search command: collect listings page by page, snapshot
// them to CSV, then ingest the batch under its category.
func (c *SearchCmd) Run(deps *Dependencies) error {
	runID := uuid.New().String()
	logger := deps.Logger.With("run", runID)
	deps.Collector.Logger = logger

	kw := aliscout.FormatKeyword(c.Keyword)

	listings, err := deps.Collector.Collect(deps.Ctx, c.Keyword, c.Size)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aliscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Collected %d listings for %q\n", len(listings), kw.Category)
	if len(listings) < c.Size {
		fmt.Fprintf(deps.Stdout, "  (short of the %d target; no more pages were available)\n", c.Size)
	}

	path, err := deps.Snapshots.Save(deps.Ctx, listings, kw.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: collected %d listings but failed to write snapshot: %v\n", len(listings), err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved snapshot to %s\n", path)

	// Ingest: resolve the category, then insert the batch. A failure here
	// is a storage failure, distinct from a collection shortfall.
	category, err := deps.Categories.ResolveOrCreate(deps.Ctx, kw.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: collected %d listings but failed to resolve category: %s\n",
			len(listings), aliscout.ErrorMessage(err))
		return err
	}

	count, err := deps.Products.CreateProducts(deps.Ctx, category.ID, listings)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: collected %d listings but failed to store them: %s\n",
			len(listings), aliscout.ErrorMessage(err))
		return err
	}

	logger.Info("ingest committed", "category", category.Name, "categoryID", category.ID, "inserted", count)
	fmt.Fprintf(deps.Stdout, "Inserted %d products under category %q (id %d)\n", count, category.Name, category.ID)

	return nil
}
