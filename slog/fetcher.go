// Package slog provides logging decorators for aliscout interfaces.
//
// The collection loop deliberately swallows page failures (a failed page is
// treated as "no more pages"), so these decorators are where end-of-results
// and genuine transient errors stay distinguishable in the logs.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kofiasare/aliscout"
)

// Ensure LoggingFetcher implements aliscout.Fetcher.
var _ aliscout.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-page logging.
type LoggingFetcher struct {
	next   aliscout.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next aliscout.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
