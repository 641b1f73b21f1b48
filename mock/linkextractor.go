package mock

import "github.com/fwojciec/crawlrag"

var _ crawlrag.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of crawlrag.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]crawlrag.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]crawlrag.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}
