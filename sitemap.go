package crawlrag

import (
	"context"
	"regexp"
)

// SitemapService discovers crawlable URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the site's sitemaps.
	// Sitemaps are located via robots.txt directives with /sitemap.xml as
	// the fallback; sitemap indexes are followed recursively. A nil filter
	// returns every discovered URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects URLs by regular expression. When Include patterns are
// present a URL must match at least one of them; Exclude patterns then
// remove URLs that matched.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
