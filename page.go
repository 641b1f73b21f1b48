package crawlrag

import (
	"context"
	"time"
)

// Page represents a crawled web page after content extraction and markdown
// conversion.
type Page struct {
	URL       string
	Title     string
	Content   string // Markdown
	CrawledAt time.Time
}

// PageResult pairs a URL with the outcome of crawling it. Failed pages
// carry an error instead of content so that batch reports can show both.
type PageResult struct {
	URL  string
	Page *Page
	Err  error
}

// Capturer renders pages into visual artifacts. Implementations use
// browser automation; both methods return raw bytes suitable for base64
// data-URI encoding.
type Capturer interface {
	// Screenshot captures the page as a PNG. When fullPage is true the
	// whole scrollable page is captured instead of the viewport.
	Screenshot(ctx context.Context, url string, fullPage bool) ([]byte, error)

	// PDF renders the page as a PDF document.
	PDF(ctx context.Context, url string) ([]byte, error)
}
