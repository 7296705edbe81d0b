// Package collect implements the pagination-driven collection loop that
// accumulates product listings from rendered search result pages.
package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kofiasare/aliscout"
)

// DefaultMaxPages is the hard ceiling on pages fetched per run, regardless
// of target size. It prevents an unbounded walk against a site that never
// stops returning results.
const DefaultMaxPages = 60

// Collector drives keyword-to-URL formatting, repeated page fetch/extract,
// accumulation, and the continue/stop decision. Pages are fetched strictly
// sequentially; the fetcher's browser session is shared state.
type Collector struct {
	Fetcher   aliscout.Fetcher
	Extractor aliscout.Extractor

	// SearchURL is a printf template taking the URL-form keyword and the
	// page number. Defaults to aliscout.DefaultSearchURL.
	SearchURL string

	// MaxPages caps the page walk. Defaults to DefaultMaxPages.
	MaxPages int

	// Logger receives per-page progress and the reason collection ended.
	// Optional; nil discards.
	Logger *slog.Logger
}

// Collect pages through search results for the keyword until at least
// targetSize listings have accumulated or the page ceiling is reached.
//
// A fetch or extraction failure ends the walk and returns whatever has been
// accumulated so far with a nil error: a failed page is treated as "no more
// pages available". The failure is still logged with its cause so that
// end-of-results and transient errors can be told apart in the logs.
//
// At least page 1 is always fetched, even for targetSize <= 0; the continue
// decision happens after each page is accumulated.
func (c *Collector) Collect(ctx context.Context, keyword string, targetSize int) ([]*aliscout.Listing, error) {
	kw := aliscout.FormatKeyword(keyword)
	if kw.IsZero() {
		return nil, aliscout.Errorf(aliscout.EINVALID, "keyword %q is empty after normalization", keyword)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	searchURL := c.SearchURL
	if searchURL == "" {
		searchURL = aliscout.DefaultSearchURL
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	accumulated := []*aliscout.Listing{}
	for page := 1; ; page++ {
		url := fmt.Sprintf(searchURL, kw.Query, page)

		html, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			// Could be end of results or a transient failure; the
			// two are deliberately not distinguished beyond the log.
			logger.Warn("page fetch failed, ending collection",
				"page", page,
				"collected", len(accumulated),
				"error", err,
			)
			break
		}

		listings, err := c.Extractor.Extract(html)
		if err != nil {
			logger.Warn("page extraction failed, ending collection",
				"page", page,
				"collected", len(accumulated),
				"error", err,
			)
			break
		}

		for _, listing := range listings {
			listing.Category = kw.Category
			accumulated = append(accumulated, listing)
		}

		logger.Info("page collected",
			"page", page,
			"added", len(listings),
			"collected", len(accumulated),
		)

		if len(accumulated) >= targetSize || page >= maxPages {
			break
		}
	}

	logger.Info("collection finished",
		"keyword", kw.Category,
		"collected", len(accumulated),
		"target", targetSize,
	)

	return accumulated, nil
}
