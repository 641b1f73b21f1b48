package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/crawl"
	"github.com/fwojciec/crawlrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawler_SmartCrawl(t *testing.T) {
	t.Parallel()

	t.Run("single page when maxPages is one", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "page content", nil
		})

		pages, err := c.SmartCrawl(context.Background(), "https://example.com/", "query", 1)

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://example.com/", pages[0].URL)
	})

	t.Run("follows relevant links first", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "content of " + url, nil
		})
		c.Links = &mock.LinkExtractor{ExtractLinksFn: func(html, baseURL string) ([]crawlrag.DiscoveredLink, error) {
			if baseURL != "https://example.com/" {
				return nil, nil
			}
			return []crawlrag.DiscoveredLink{
				{URL: "https://example.com/about", Text: "About us"},
				{URL: "https://example.com/pricing", Text: "Pricing plans"},
			}, nil
		}}

		pages, err := c.SmartCrawl(context.Background(), "https://example.com/", "pricing", 2)

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "https://example.com/pricing", pages[1].URL)
	})

	t.Run("ignores links on other hosts", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "content", nil
		})
		c.Links = &mock.LinkExtractor{ExtractLinksFn: func(html, baseURL string) ([]crawlrag.DiscoveredLink, error) {
			return []crawlrag.DiscoveredLink{
				{URL: "https://other.com/page", Text: "pricing elsewhere"},
			}, nil
		}}

		pages, err := c.SmartCrawl(context.Background(), "https://example.com/", "pricing", 5)

		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})

	t.Run("start page failure is fatal", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "", errors.New("unreachable")
		})

		_, err := c.SmartCrawl(context.Background(), "https://example.com/", "q", 3)

		assert.Error(t, err)
	})

	t.Run("followed link failures are skipped", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			if url == "https://example.com/broken" {
				return "", errors.New("boom")
			}
			return "ok", nil
		})
		c.Links = &mock.LinkExtractor{ExtractLinksFn: func(html, baseURL string) ([]crawlrag.DiscoveredLink, error) {
			if baseURL != "https://example.com/" {
				return nil, nil
			}
			return []crawlrag.DiscoveredLink{
				{URL: "https://example.com/broken", Text: "pricing"},
				{URL: "https://example.com/fine", Text: "pricing"},
			}, nil
		}}

		pages, err := c.SmartCrawl(context.Background(), "https://example.com/", "pricing", 3)

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "https://example.com/fine", pages[1].URL)
	})

	t.Run("invalid start URL is rejected", func(t *testing.T) {
		t.Parallel()

		c := newTestCrawler(func(_ context.Context, url string) (string, error) {
			return "ok", nil
		})

		_, err := c.SmartCrawl(context.Background(), "::bad::", "q", 1)

		assert.Equal(t, crawlrag.EINVALID, crawlrag.ErrorCode(err))
	})
}

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops by priority", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		f.Push(crawlrag.DiscoveredLink{URL: "https://example.com/low", Priority: crawlrag.PriorityContent})
		f.Push(crawlrag.DiscoveredLink{URL: "https://example.com/high", Priority: crawlrag.PriorityRelevant})

		link, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/high", link.URL)
	})

	t.Run("deduplicates URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push(crawlrag.DiscoveredLink{URL: "https://example.com/a"}))
		assert.False(t, f.Push(crawlrag.DiscoveredLink{URL: "https://example.com/a"}))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("fragments are ignored for deduplication", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		f.Push(crawlrag.DiscoveredLink{URL: "https://example.com/a#intro"})

		assert.True(t, f.Seen("https://example.com/a"))
		assert.False(t, f.Push(crawlrag.DiscoveredLink{URL: "https://example.com/a#usage"}))
	})

	t.Run("pop on empty frontier returns false", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		_, ok := f.Pop()
		assert.False(t, ok)
	})
}
