package crawl

import (
	"strings"

	"github.com/fwojciec/crawlrag"
)

// Ensure FallbackExtractor implements crawlrag.Extractor at compile time.
var _ crawlrag.Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor tries a primary content extractor and falls back to a
// secondary one when the primary fails or finds no content. Pages that defeat
// article-oriented extraction (sparse landing pages, heavy client-side
// markup) often still yield content under a more permissive extractor.
type FallbackExtractor struct {
	Primary  crawlrag.Extractor
	Fallback crawlrag.Extractor
}

// Extract returns the primary result unless it errors or has empty content.
func (e *FallbackExtractor) Extract(html string) (*crawlrag.ExtractResult, error) {
	result, err := e.Primary.Extract(html)
	if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		return result, nil
	}

	if e.Fallback == nil {
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	fallback, ferr := e.Fallback.Extract(html)
	if ferr != nil {
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	// Keep the primary's title when the fallback lost it.
	if fallback.Title == "" && err == nil {
		fallback.Title = result.Title
	}

	return fallback, nil
}
