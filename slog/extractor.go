package slog

import (
	"log/slog"
	"time"

	"github.com/kofiasare/aliscout"
)

// Ensure LoggingExtractor implements aliscout.Extractor.
var _ aliscout.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page logging. Incomplete
// tiles are skipped silently by the extractor itself; the listing count
// logged here against page size is how a selector drift shows up.
type LoggingExtractor struct {
	next   aliscout.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next aliscout.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the outcome of the extraction and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) Extract(html string) (listings []*aliscout.Listing, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"listings", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
