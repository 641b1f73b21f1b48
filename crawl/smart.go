package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/crawlrag"
)

// Frontier configuration for adaptive crawling.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// SmartCrawl crawls up to maxPages pages starting at startURL, following
// same-host links in query-relevance order. Links whose anchor text shares
// terms with the query are scheduled ahead of other content links.
//
// Pages are processed sequentially: the frontier ordering only matters when
// relevant links compete for the remaining page budget, and sequential
// processing keeps per-domain rate limiting simple. The first page is
// always crawled; with maxPages <= 1 no links are followed.
func (c *Crawler) SmartCrawl(ctx context.Context, startURL, query string, maxPages int) ([]*crawlrag.Page, error) {
	if maxPages < 1 {
		maxPages = 1
	}

	start, err := url.Parse(startURL)
	if err != nil {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "invalid start URL: %v", err)
	}

	terms := strings.Fields(strings.ToLower(query))

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(crawlrag.DiscoveredLink{URL: startURL, Priority: crawlrag.PriorityRelevant})

	var pages []*crawlrag.Page
	for len(pages) < maxPages {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		page, err := c.crawlAndDiscover(ctx, link.URL, start.Host, terms, frontier)
		if err != nil {
			// The start page failing is fatal; followed links are
			// best-effort.
			if len(pages) == 0 {
				return nil, err
			}
			continue
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// crawlAndDiscover fetches one page, queues its same-host links scored
// against the query terms, and returns the page content.
func (c *Crawler) crawlAndDiscover(ctx context.Context, pageURL, host string, terms []string, frontier *Frontier) (*crawlrag.Page, error) {
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

	if c.Links != nil {
		links, err := c.Links.ExtractLinks(html, pageURL)
		if err == nil {
			for _, l := range links {
				if u, err := url.Parse(l.URL); err != nil || u.Host != host {
					continue
				}
				l.Priority = linkPriority(l.Text, terms)
				frontier.Push(l)
			}
		}
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

// linkPriority ranks a link by how many query terms its anchor text
// contains.
func linkPriority(anchorText string, terms []string) crawlrag.LinkPriority {
	lower := strings.ToLower(anchorText)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return crawlrag.PriorityRelevant
		}
	}
	return crawlrag.PriorityContent
}
