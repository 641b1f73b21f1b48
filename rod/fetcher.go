// Package rod implements page fetching and capture using Chrome browser
// automation via the rod library.
package rod

import (
	"context"

	"github.com/fwojciec/crawlrag"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements crawlrag.Fetcher at compile time.
var _ crawlrag.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
}

// NewFetcher creates a Fetcher backed by the given browser manager.
// The manager recycles the underlying browser periodically, so long crawls
// do not accumulate Chrome memory.
func NewFetcher(manager *BrowserManager) *Fetcher {
	return &Fetcher{manager: manager}
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
