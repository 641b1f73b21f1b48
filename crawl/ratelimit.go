package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/crawlrag"
	"golang.org/x/time/rate"
)

var _ crawlrag.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate limits requests per domain using token buckets, so
// concurrent crawls of different sites proceed independently while each
// site sees at most rps requests per second. Hostnames are compared case
// insensitively. Safe for concurrent use.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucketFor(domain).Wait(ctx)
}

func (d *DomainLimiter) bucketFor(domain string) *rate.Limiter {
	key := strings.ToLower(domain)

	d.mu.Lock()
	defer d.mu.Unlock()

	bucket, ok := d.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[key] = bucket
	}
	return bucket
}
