// Package crawl provides web page crawling orchestration.
// It coordinates fetching, content extraction, markdown conversion, and
// adaptive link-following under per-domain rate limits.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/crawlrag"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default bound on simultaneous in-flight
// fetches during batch crawls.
const DefaultConcurrency = 5

// Crawler orchestrates the crawling of web pages.
type Crawler struct {
	Fetcher     crawlrag.Fetcher
	Extractor   crawlrag.Extractor
	Converter   crawlrag.Converter
	Links       crawlrag.LinkExtractor
	RateLimiter crawlrag.DomainLimiter
	RetryDelays []time.Duration

	// Concurrency bounds simultaneous fetches in CrawlPages.
	// Defaults to DefaultConcurrency; MaxConcurrency caps caller requests.
	Concurrency    int
	MaxConcurrency int
}

// CrawlPage fetches a single URL and returns its extracted content as
// markdown. Fetches are retried with backoff before giving up.
func (c *Crawler) CrawlPage(ctx context.Context, pageURL string) (*crawlrag.Page, error) {
	if c.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := fetchWithBackoff(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		return nil, err
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &crawlrag.Page{
		URL:       pageURL,
		Title:     extracted.Title,
		Content:   markdown,
		CrawledAt: time.Now().UTC(),
	}, nil
}

// CrawlPages crawls multiple URLs concurrently under the configured
// concurrency bound. Results preserve input order; individual failures are
// reported per-page rather than aborting the batch.
func (c *Crawler) CrawlPages(ctx context.Context, urls []string) []crawlrag.PageResult {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if c.MaxConcurrency > 0 && concurrency > c.MaxConcurrency {
		concurrency = c.MaxConcurrency
	}

	results := make([]crawlrag.PageResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			page, err := c.CrawlPage(gctx, u)
			results[i] = crawlrag.PageResult{URL: u, Page: page, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
