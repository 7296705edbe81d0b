// Package goquery provides CSS-selector based extraction of product
// listings from rendered AliExpress search result pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kofiasare/aliscout"
)

// Selectors for the search result tiles. The class names are generated by
// the site's build and change when the site ships a new frontend; they are
// kept in one place so an update is a one-line change per field.
const (
	tileSelector  = "div._1OUGS"
	titleSelector = "a span"
	imageSelector = "img.A3Q1M"
	linkSelector  = "a._9tla3"
	priceSelector = "div._12A8D"
	storeSelector = "a._2lsU7"
)

const baseURL = "https://www.aliexpress.com"

// Ensure Extractor implements aliscout.Extractor at compile time.
var _ aliscout.Extractor = (*Extractor)(nil)

// Extractor parses product tiles out of rendered search result HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the listings found on one page in DOM encounter order.
// A tile missing any required field is skipped; the remaining tiles on the
// page are unaffected. The Category field is left blank for the caller to
// stamp.
func (e *Extractor) Extract(html string) ([]*aliscout.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, aliscout.Errorf(aliscout.EINVALID, "failed to parse HTML: %v", err)
	}

	var listings []*aliscout.Listing
	doc.Find(tileSelector).Each(func(_ int, tile *goquery.Selection) {
		listing := &aliscout.Listing{
			Name:     strings.TrimSpace(tile.Find(titleSelector).First().Text()),
			ItemURL:  absoluteURL(tile.Find(linkSelector).First().AttrOr("href", "")),
			ImageURL: absoluteURL(tile.Find(imageSelector).First().AttrOr("src", "")),
			Price:    strings.TrimSpace(tile.Find(priceSelector).First().Text()),
			Store:    strings.TrimSpace(tile.Find(storeSelector).First().Text()),
		}

		// A tile with any field missing is a tile-local extraction
		// failure, not a partial record.
		if listing.Name == "" || listing.ItemURL == "" || listing.ImageURL == "" ||
			listing.Price == "" || listing.Store == "" {
			return
		}

		listings = append(listings, listing)
	})

	return listings, nil
}

// absoluteURL resolves the site's relative and protocol-relative URLs.
func absoluteURL(raw string) string {
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return baseURL + raw
	default:
		return raw
	}
}
