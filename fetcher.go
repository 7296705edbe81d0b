package aliscout

import (
	"context"
	"time"
)

// FetchOptions tune how a page is rendered before its HTML is read.
type FetchOptions struct {
	// RenderWait is the settle time after load (and between scrolls)
	// before reading the DOM.
	RenderWait time.Duration

	// ScrollIterations is the number of scroll-to-bottom actions used to
	// trigger lazy-loaded result tiles.
	ScrollIterations int

	// Timeout is the hard ceiling on total render time for one page.
	Timeout time.Duration
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content; the search result tiles only exist after script execution.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and
	// returns the rendered HTML. Exceeding the render budget is an
	// ordinary fetch error.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
