package collect_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kofiasare/aliscout"
	"github.com/kofiasare/aliscout/collect"
	"github.com/kofiasare/aliscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageExtractor returns n listings per page, naming them by call order so
// tests can assert encounter order.
func pageExtractor(n int) *mock.Extractor {
	calls := 0
	return &mock.Extractor{
		ExtractFn: func(html string) ([]*aliscout.Listing, error) {
			calls++
			listings := make([]*aliscout.Listing, 0, n)
			for i := 0; i < n; i++ {
				listings = append(listings, &aliscout.Listing{
					Name:     fmt.Sprintf("page %d item %d", calls, i+1),
					ItemURL:  "https://www.aliexpress.com/item/1.html",
					ImageURL: "https://img.example.com/1.jpg",
					Price:    "US $1.99",
					Store:    "Store",
				})
			}
			return listings, nil
		},
	}
}

func okFetcher(urls *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			if urls != nil {
				*urls = append(*urls, url)
			}
			return "<html></html>", nil
		},
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	t.Run("stops once target size is reached", func(t *testing.T) {
		t.Parallel()

		var urls []string
		c := &collect.Collector{
			Fetcher:   okFetcher(&urls),
			Extractor: pageExtractor(3),
		}

		listings, err := c.Collect(context.Background(), "dog", 7)
		require.NoError(t, err)

		assert.Len(t, listings, 9, "3 pages of 3 to reach target 7")
		assert.Len(t, urls, 3)
	})

	t.Run("stamps every listing with the normalized category", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{
			Fetcher:   okFetcher(nil),
			Extractor: pageExtractor(2),
		}

		listings, err := c.Collect(context.Background(), "  Male Shoes ", 2)
		require.NoError(t, err)
		require.Len(t, listings, 2)
		for _, l := range listings {
			assert.Equal(t, "male shoes", l.Category)
		}
	})

	t.Run("builds page URLs from the query form of the keyword", func(t *testing.T) {
		t.Parallel()

		var urls []string
		c := &collect.Collector{
			Fetcher:   okFetcher(&urls),
			Extractor: pageExtractor(1),
			SearchURL: "https://example.com/search?q=%s&page=%d",
		}

		_, err := c.Collect(context.Background(), "male shoes", 2)
		require.NoError(t, err)

		require.NotEmpty(t, urls)
		assert.Equal(t, "https://example.com/search?q=male+shoes&page=1", urls[0])
		assert.Equal(t, "https://example.com/search?q=male+shoes&page=2", urls[1])
	})

	t.Run("preserves page and encounter order", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{
			Fetcher:   okFetcher(nil),
			Extractor: pageExtractor(2),
		}

		listings, err := c.Collect(context.Background(), "dog", 4)
		require.NoError(t, err)
		require.Len(t, listings, 4)

		assert.Equal(t, "page 1 item 1", listings[0].Name)
		assert.Equal(t, "page 1 item 2", listings[1].Name)
		assert.Equal(t, "page 2 item 1", listings[2].Name)
		assert.Equal(t, "page 2 item 2", listings[3].Name)
	})

	t.Run("non-positive target still fetches exactly page 1", func(t *testing.T) {
		t.Parallel()

		for _, target := range []int{0, -5} {
			var urls []string
			c := &collect.Collector{
				Fetcher:   okFetcher(&urls),
				Extractor: pageExtractor(3),
			}

			listings, err := c.Collect(context.Background(), "dog", target)
			require.NoError(t, err)
			assert.Len(t, urls, 1, "target %d fetches one page", target)
			assert.Len(t, listings, 3, "page 1 results are returned")
		}
	})

	t.Run("never exceeds the page ceiling", func(t *testing.T) {
		t.Parallel()

		var urls []string
		c := &collect.Collector{
			Fetcher:   okFetcher(&urls),
			Extractor: pageExtractor(1), // never reaches the target
		}

		listings, err := c.Collect(context.Background(), "dog", 1_000_000)
		require.NoError(t, err)

		assert.Len(t, urls, collect.DefaultMaxPages)
		assert.Len(t, listings, collect.DefaultMaxPages)
	})

	t.Run("fetch failure returns partial results without error", func(t *testing.T) {
		t.Parallel()

		page := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				page++
				if page == 2 {
					return "", errors.New("render timeout")
				}
				return "<html></html>", nil
			},
		}
		c := &collect.Collector{
			Fetcher:   fetcher,
			Extractor: pageExtractor(3),
		}

		listings, err := c.Collect(context.Background(), "dog", 5)
		require.NoError(t, err, "a failed page is not an error")
		assert.Len(t, listings, 3, "page 1 results survive the page 2 failure")
	})

	t.Run("extraction failure returns partial results without error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		extractor := &mock.Extractor{
			ExtractFn: func(html string) ([]*aliscout.Listing, error) {
				calls++
				if calls == 2 {
					return nil, errors.New("unexpected markup")
				}
				return []*aliscout.Listing{{
					Name:     "item",
					ItemURL:  "https://www.aliexpress.com/item/1.html",
					ImageURL: "https://img.example.com/1.jpg",
					Price:    "US $1.99",
					Store:    "Store",
				}}, nil
			},
		}
		c := &collect.Collector{
			Fetcher:   okFetcher(nil),
			Extractor: extractor,
		}

		listings, err := c.Collect(context.Background(), "dog", 5)
		require.NoError(t, err)
		assert.Len(t, listings, 1)
	})

	t.Run("failure on the first page yields an empty result", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", errors.New("unreachable")
				},
			},
			Extractor: pageExtractor(1),
		}

		listings, err := c.Collect(context.Background(), "dog", 5)
		require.NoError(t, err)
		assert.NotNil(t, listings)
		assert.Empty(t, listings)
	})

	t.Run("rejects keyword that normalizes to nothing", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{
			Fetcher:   okFetcher(nil),
			Extractor: pageExtractor(1),
		}

		_, err := c.Collect(context.Background(), "?!", 5)
		require.Error(t, err)
		assert.Equal(t, aliscout.EINVALID, aliscout.ErrorCode(err))
	})

	t.Run("cancelled context before the first fetch is an error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetched := false
		c := &collect.Collector{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetched = true
					return "<html></html>", nil
				},
			},
			Extractor: pageExtractor(1),
		}

		_, err := c.Collect(ctx, "dog", 5)
		require.Error(t, err)
		assert.False(t, fetched)
	})
}
