// Package tools implements the operation surface of the crawler: single and
// batch page crawls, query-guided smart crawls, structured extraction, page
// capture, semantic search and question answering. Each operation renders a
// markdown report; crawled pages are indexed into the vector and graph
// stores as a side effect.
package tools

import (
	"context"
	"log/slog"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/crawl"
)

// Service wires the crawler and its collaborators into the tool operations.
// All fields except Logger are required by at least one operation; a nil
// collaborator makes the operations that need it fail, not the others.
type Service struct {
	Crawler    *crawl.Crawler
	Documents  crawlrag.DocumentService
	Graph      crawlrag.GraphStore
	Embedder   crawlrag.Embedder
	Search     crawlrag.SearchService
	Capturer   crawlrag.Capturer
	Structured crawlrag.StructuredExtractor
	LLM        crawlrag.LLMExtractor
	Asker      crawlrag.Asker
	Sitemaps   crawlrag.SitemapService
	Tokens     crawlrag.TokenCounter
	Logger     *slog.Logger
}

// CrawlPageOptions controls the optional sections of a crawl report.
type CrawlPageOptions struct {
	// IncludeLinks adds internal and external link sections.
	IncludeLinks bool

	// IncludeImages adds an image section.
	IncludeImages bool
}

// CrawlPage crawls a single URL and returns its content as a markdown
// report. The crawled page is indexed for search and graph queries;
// indexing failures are logged but don't fail the crawl.
func (s *Service) CrawlPage(ctx context.Context, url string, opts CrawlPageOptions) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}

	page, err := s.Crawler.CrawlPage(ctx, url)
	if err != nil {
		return "", err
	}

	s.indexPage(ctx, page)

	return renderPageReport(page, opts), nil
}

// CrawlPages crawls multiple URLs concurrently and returns a combined
// report with per-page sections and success/failure counts. Successful
// pages are indexed; failed pages report their error inline.
func (s *Service) CrawlPages(ctx context.Context, urls []string, maxConcurrent int) (string, error) {
	if len(urls) == 0 {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "at least one url required")
	}

	c := *s.Crawler
	if maxConcurrent > 0 {
		c.Concurrency = maxConcurrent
	}

	results := c.CrawlPages(ctx, urls)

	for _, r := range results {
		if r.Err == nil {
			s.indexPage(ctx, r.Page)
		}
	}

	return renderBatchReport(results), nil
}

// SmartCrawl crawls starting at url, following same-host links relevant to
// the query when maxPages allows, and returns the content sections ranked
// by query relevance. When nothing scores, the full content is returned
// truncated instead.
func (s *Service) SmartCrawl(ctx context.Context, url, query string, maxPages int) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}
	if query == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "query required")
	}

	pages, err := s.Crawler.SmartCrawl(ctx, url, query, maxPages)
	if err != nil {
		return "", err
	}

	for _, page := range pages {
		s.indexPage(ctx, page)
	}

	return renderSmartCrawlReport(pages, url, query), nil
}

// CrawlSite discovers a site's URLs from its sitemap and batch crawls them.
func (s *Service) CrawlSite(ctx context.Context, url string, filter *crawlrag.URLFilter, maxConcurrent int) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}

	urls, err := s.Sitemaps.DiscoverURLs(ctx, url, filter)
	if err != nil {
		return "", err
	}
	if len(urls) == 0 {
		return "No URLs discovered from sitemap", nil
	}

	return s.CrawlPages(ctx, urls, maxConcurrent)
}

// indexPage stores the page in the vector store and merges its knowledge
// graph extraction. Failures here must not lose the crawl output, so they
// are logged and swallowed.
func (s *Service) indexPage(ctx context.Context, page *crawlrag.Page) {
	doc := &crawlrag.Document{
		SourceURL: page.URL,
		Title:     page.Title,
		Content:   page.Content,
		CrawledAt: page.CrawledAt,
	}

	if s.Embedder != nil {
		embedding, err := s.Embedder.Embed(ctx, page.Content)
		if err != nil {
			s.log().Warn("embedding failed", "url", page.URL, "err", err)
		} else {
			doc.Embedding = embedding
		}
	}

	if s.Documents != nil {
		if err := s.Documents.UpsertDocument(ctx, doc); err != nil {
			s.log().Warn("document upsert failed", "url", page.URL, "err", err)
		}
	}

	if s.Graph != nil {
		ex := crawlrag.ExtractGraph(page.URL, page.Title, page.Content, page.CrawledAt)
		if err := s.Graph.UpsertExtraction(ctx, ex); err != nil {
			s.log().Warn("graph upsert failed", "url", page.URL, "err", err)
		}
	}

	if s.Tokens != nil {
		if n, err := s.Tokens.CountTokens(ctx, page.Content); err == nil {
			s.log().Info("indexed page", "url", page.URL, "tokens", n)
		}
	}
}

func (s *Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
