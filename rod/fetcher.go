// Package rod provides a browser-based page fetcher using Chrome automation.
// Search result tiles on the target site only materialize after JavaScript
// execution and lazy-load on scroll, so plain HTTP fetching is not an option.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/stealth"
	"github.com/kofiasare/aliscout"
)

// Ensure Fetcher implements aliscout.Fetcher at compile time.
var _ aliscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using a headless Chrome browser.
// Pages are created through stealth patches; commerce sites fingerprint
// vanilla headless Chrome aggressively.
//
// Fetcher is NOT safe for concurrent use: one run fetches its pages
// strictly sequentially against the shared browser session.
type Fetcher struct {
	manager *BrowserManager
	opts    aliscout.FetchOptions
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts aliscout.FetchOptions, managerOpts ...ManagerOption) (*Fetcher, error) {
	manager, err := NewBrowserManager(managerOpts...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager, opts: opts}, nil
}

// Fetch navigates to the URL, waits for the render to settle, scrolls to the
// bottom the configured number of times to trigger lazy-loaded tiles, and
// returns the rendered HTML. The whole render is bounded by the configured
// timeout; exceeding it is an ordinary fetch error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()
	}

	page, err := stealth.Page(f.manager.Browser())
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Settle time before reading or scrolling the DOM.
	if err := sleep(ctx, f.opts.RenderWait); err != nil {
		return "", err
	}

	for i := 0; i < f.opts.ScrollIterations; i++ {
		if _, err := page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
			return "", fmt.Errorf("scrolling page: %w", err)
		}
		if err := sleep(ctx, f.opts.RenderWait); err != nil {
			return "", err
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
