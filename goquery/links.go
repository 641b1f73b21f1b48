package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/crawlrag"
)

// Compile-time interface verification.
var _ crawlrag.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers links in HTML documents for crawling.
type LinkExtractor struct{}

// NewLinkExtractor returns a link extractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns the anchors in the HTML resolved against baseURL.
// Non-HTTP schemes (javascript:, mailto:, tel:, data:) and self-referential
// anchors are skipped, fragments are stripped, and duplicates are collapsed
// to their first occurrence in document order. Links to other hosts are
// included so callers can decide how to treat external references.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]crawlrag.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []crawlrag.DiscoveredLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		links = append(links, crawlrag.DiscoveredLink{
			URL:      resolved,
			Priority: crawlrag.PriorityContent,
			Text:     strings.TrimSpace(sel.Text()),
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
