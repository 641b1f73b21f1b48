// Package readability extracts main content from HTML using go-readability.
// It serves as a fallback when trafilatura extraction comes up empty.
package readability

import (
	"strings"

	"github.com/fwojciec/crawlrag"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements crawlrag.Extractor at compile time.
var _ crawlrag.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*crawlrag.ExtractResult, error) {
	if rawHTML == "" {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &crawlrag.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
