package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/crawl"
	"github.com/fwojciec/crawlrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCrawler returns a Crawler whose fetch/extract/convert chain passes
// content through unchanged, with retries disabled.
func newTestCrawler(fetch func(ctx context.Context, url string) (string, error)) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{FetchFn: fetch},
		Extractor: &mock.Extractor{ExtractFn: func(html string) (*crawlrag.ExtractResult, error) {
			return &crawlrag.ExtractResult{Title: "Title", ContentHTML: html}, nil
		}},
		Converter: &mock.Converter{ConvertFn: func(html string) (string, error) {
			return html, nil
		}},
		RetryDelays: []time.Duration{},
	}
}

func TestCrawler_CrawlPage(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts and converts", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "<p>hello</p>", nil
		})

		page, err := c.CrawlPage(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", page.URL)
		assert.Equal(t, "Title", page.Title)
		assert.Equal(t, "<p>hello</p>", page.Content)
		assert.False(t, page.CrawledAt.IsZero())
	})

	t.Run("retries failed fetches", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			if attempts.Add(1) < 3 {
				return "", errors.New("flaky")
			}
			return "ok", nil
		})
		c.RetryDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

		page, err := c.CrawlPage(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "ok", page.Content)
		assert.EqualValues(t, 3, attempts.Load())
	})

	t.Run("returns fetch error after retries exhausted", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "", errors.New("down")
		})
		c.RetryDelays = []time.Duration{time.Millisecond}

		_, err := c.CrawlPage(context.Background(), "https://example.com/")

		assert.EqualError(t, err, "down")
	})
}

func TestCrawler_CrawlPages(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "content of " + url, nil
		})

		urls := []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}

		results := c.CrawlPages(context.Background(), urls)

		require.Len(t, results, 3)
		for i, r := range results {
			assert.Equal(t, urls[i], r.URL)
			require.NoError(t, r.Err)
			assert.Equal(t, "content of "+urls[i], r.Page.Content)
		}
	})

	t.Run("reports per-page failures without aborting", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			if url == "https://example.com/bad" {
				return "", errors.New("not found")
			}
			return "ok", nil
		})

		results := c.CrawlPages(context.Background(), []string{
			"https://example.com/good",
			"https://example.com/bad",
		})

		require.Len(t, results, 2)
		assert.NoError(t, results[0].Err)
		assert.Error(t, results[1].Err)
		assert.Nil(t, results[1].Page)
	})

	t.Run("bounds concurrency", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		inflight, peak := 0, 0

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			mu.Lock()
			inflight++
			if inflight > peak {
				peak = inflight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inflight--
			mu.Unlock()
			return "ok", nil
		})
		c.Concurrency = 2

		urls := make([]string, 10)
		for i := range urls {
			urls[i] = fmt.Sprintf("https://example.com/%d", i)
		}

		c.CrawlPages(context.Background(), urls)

		assert.LessOrEqual(t, peak, 2)
	})

	t.Run("caps requested concurrency at the ceiling", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		inflight, peak := 0, 0

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			mu.Lock()
			inflight++
			if inflight > peak {
				peak = inflight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inflight--
			mu.Unlock()
			return "ok", nil
		})
		c.Concurrency = 50
		c.MaxConcurrency = 3

		urls := make([]string, 12)
		for i := range urls {
			urls[i] = fmt.Sprintf("https://example.com/%d", i)
		}

		c.CrawlPages(context.Background(), urls)

		assert.LessOrEqual(t, peak, 3)
	})
}
