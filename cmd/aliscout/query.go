package main

import (
	"fmt"

	"github.com/kofiasare/aliscout"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	// The store holds normalized names; normalize here so a raw keyword
	// round-trips to the rows ingested under it.
	kw := aliscout.FormatKeyword(c.Keyword)
	if kw.IsZero() {
		err := aliscout.Errorf(aliscout.EINVALID, "keyword %q is empty after normalization", c.Keyword)
		fmt.Fprintf(deps.Stderr, "error: %s\n", aliscout.ErrorMessage(err))
		return err
	}

	listings, err := deps.Products.FindListings(deps.Ctx, kw.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aliscout.ErrorMessage(err))
		return err
	}

	if len(listings) == 0 {
		fmt.Fprintf(deps.Stdout, "No listings found for %q. Use 'aliscout search' to collect some.\n", kw.Category)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Listings for %q (%d total):\n\n", kw.Category, len(listings))
	for _, l := range listings {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s | %s\n     %s\n", l.ProductID, l.ProductName, l.Price, l.Store, l.ItemURL)
	}

	return nil
}
