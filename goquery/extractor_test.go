package goquery_test

import (
	"fmt"
	"testing"

	"github.com/kofiasare/aliscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tile struct {
	title string
	href  string
	img   string
	price string
	store string
}

func renderTile(t tile) string {
	var title, link, img, price, store string
	if t.title != "" {
		title = fmt.Sprintf(`<div><div><a href="#"><span>%s</span></a></div></div>`, t.title)
	}
	if t.href != "" {
		link = fmt.Sprintf(`<a class="_9tla3" href="%s"></a>`, t.href)
	}
	if t.img != "" {
		img = fmt.Sprintf(`<img class="A3Q1M" src="%s"/>`, t.img)
	}
	if t.price != "" {
		price = fmt.Sprintf(`<div class="_12A8D">%s</div>`, t.price)
	}
	if t.store != "" {
		store = fmt.Sprintf(`<a class="_2lsU7">%s</a>`, t.store)
	}
	return fmt.Sprintf(`<div class="_1OUGS">%s%s%s%s%s</div>`, title, link, img, price, store)
}

func renderPage(tiles ...tile) string {
	page := "<html><body>"
	for _, t := range tiles {
		page += renderTile(t)
	}
	return page + "</body></html>"
}

func completeTile(n int) tile {
	return tile{
		title: fmt.Sprintf("Product %d", n),
		href:  fmt.Sprintf("/item/%d.html", n),
		img:   fmt.Sprintf("//img.example.com/%d.jpg", n),
		price: fmt.Sprintf("US $%d.99", n),
		store: fmt.Sprintf("Store %d", n),
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts complete tiles in encounter order", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		listings, err := e.Extract(renderPage(completeTile(1), completeTile(2), completeTile(3)))
		require.NoError(t, err)
		require.Len(t, listings, 3)

		for i, l := range listings {
			n := i + 1
			assert.Equal(t, fmt.Sprintf("Product %d", n), l.Name)
			assert.Equal(t, fmt.Sprintf("https://www.aliexpress.com/item/%d.html", n), l.ItemURL)
			assert.Equal(t, fmt.Sprintf("https://img.example.com/%d.jpg", n), l.ImageURL)
			assert.Equal(t, fmt.Sprintf("US $%d.99", n), l.Price)
			assert.Equal(t, fmt.Sprintf("Store %d", n), l.Store)
			assert.Empty(t, l.Category, "category is stamped by the collector")
		}
	})

	t.Run("skips tiles missing a required field", func(t *testing.T) {
		t.Parallel()

		missingPrice := completeTile(2)
		missingPrice.price = ""
		missingStore := completeTile(3)
		missingStore.store = ""

		e := goquery.NewExtractor()
		listings, err := e.Extract(renderPage(completeTile(1), missingPrice, missingStore, completeTile(4)))
		require.NoError(t, err)
		require.Len(t, listings, 2, "incomplete tiles are dropped, complete ones survive")

		assert.Equal(t, "Product 1", listings[0].Name)
		assert.Equal(t, "Product 4", listings[1].Name)
	})

	t.Run("returns no listings for a page without tiles", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		listings, err := e.Extract("<html><body><p>no results</p></body></html>")
		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("absolute item URLs pass through unchanged", func(t *testing.T) {
		t.Parallel()

		absolute := completeTile(1)
		absolute.href = "https://www.aliexpress.com/item/1.html"

		e := goquery.NewExtractor()
		listings, err := e.Extract(renderPage(absolute))
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "https://www.aliexpress.com/item/1.html", listings[0].ItemURL)
	})
}
