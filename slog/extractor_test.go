package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/kofiasare/aliscout"
	"github.com/kofiasare/aliscout/mock"
	alislog "github.com/kofiasare/aliscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs listing count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]*aliscout.Listing, error) {
				return []*aliscout.Listing{{Name: "a"}, {Name: "b"}}, nil
			},
		}

		extractor := alislog.NewLoggingExtractor(inner, logger)
		listings, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Len(t, listings, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "listings=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]*aliscout.Listing, error) {
				return nil, errors.New("unexpected markup")
			},
		}

		extractor := alislog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"unexpected markup\"")
	})
}
