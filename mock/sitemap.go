package mock

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

var _ crawlrag.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of crawlrag.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *crawlrag.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *crawlrag.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
