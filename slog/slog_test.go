package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/mock"
	crawlragslog "github.com/fwojciec/crawlrag/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs URL count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *crawlrag.URLFilter) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		s := crawlragslog.NewLoggingSitemapService(inner, logger)
		urls, err := s.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *crawlrag.URLFilter) ([]string, error) {
				return nil, errors.New("network error")
			},
		}

		s := crawlragslog.NewLoggingSitemapService(inner, logger)
		_, err := s.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}

func TestLoggingSearchService_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SearchService{
		SearchFn: func(ctx context.Context, query string, opts crawlrag.SearchOptions) ([]crawlrag.SearchResult, error) {
			return []crawlrag.SearchResult{{Document: &crawlrag.Document{SourceURL: "https://example.com"}}}, nil
		},
	}

	s := crawlragslog.NewLoggingSearchService(inner, logger)
	results, err := s.Search(context.Background(), "auth", crawlrag.SearchOptions{})

	require.NoError(t, err)
	assert.Len(t, results, 1)
	output := buf.String()
	assert.Contains(t, output, "search")
	assert.Contains(t, output, "query=auth")
	assert.Contains(t, output, "results=1")
}

func TestLoggingGraphStore_UpsertExtraction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.GraphStore{
		UpsertExtractionFn: func(ctx context.Context, ex crawlrag.Extraction) error {
			return nil
		},
	}

	s := crawlragslog.NewLoggingGraphStore(inner, logger)
	err := s.UpsertExtraction(context.Background(), crawlrag.Extraction{
		Entities:  []crawlrag.Entity{{Kind: crawlrag.EntityDomain, Key: "example.com"}},
		Relations: nil,
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "graph upsert")
	assert.Contains(t, output, "entities=1")
	assert.Contains(t, output, "relations=0")
}
