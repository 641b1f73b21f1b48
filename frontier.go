package crawlrag

import "context"

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for adaptive crawl ordering. Query-relevant links
// are scheduled ahead of everything else.
const (
	PriorityIgnore   LinkPriority = 0
	PriorityFallback LinkPriority = 10
	PriorityContent  LinkPriority = 50
	PriorityRelevant LinkPriority = 100
)

// DiscoveredLink represents a URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
}

// URLFrontier manages a crawl queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link DiscoveredLink) bool

	// Pop returns the next URL by priority.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// LinkExtractor discovers followable links in rendered HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns discovered links with their
	// anchor text. The baseURL is used to resolve relative URLs; only
	// links on the same host as baseURL are returned.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}
