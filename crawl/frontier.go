package crawl

import (
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/bloom"
)

// Compile-time interface verification.
var _ crawlrag.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with Bloom filter deduplication.
// Links are grouped into priority tiers and popped highest tier first;
// within a tier links come out in discovery order, which keeps the crawl
// breadth-first among equally relevant pages. Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	tiers map[crawlrag.LinkPriority][]crawlrag.DiscoveredLink
	order []crawlrag.LinkPriority // tier keys, sorted high to low
	size  int
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		tiers: make(map[crawlrag.LinkPriority][]crawlrag.DiscoveredLink),
	}
}

// Push adds a link to the frontier. Returns false if the URL has already
// been seen. Fragments are stripped first, so URLs differing only by
// fragment count as duplicates.
func (f *Frontier) Push(link crawlrag.DiscoveredLink) bool {
	link.URL = stripFragment(link.URL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(link.URL) {
		return false
	}
	f.seen.Add(link.URL)

	if _, ok := f.tiers[link.Priority]; !ok {
		f.order = append(f.order, link.Priority)
		sort.Slice(f.order, func(i, j int) bool { return f.order[i] > f.order[j] })
	}
	f.tiers[link.Priority] = append(f.tiers[link.Priority], link)
	f.size++
	return true
}

// Pop returns the next link from the highest non-empty priority tier.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (crawlrag.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.order {
		queue := f.tiers[p]
		if len(queue) == 0 {
			continue
		}
		link := queue[0]
		f.tiers[p] = queue[1:]
		f.size--
		return link, true
	}
	return crawlrag.DiscoveredLink{}, false
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

// Seen returns true if the URL has been processed or queued. Fragments are
// stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
