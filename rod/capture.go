package rod

import (
	"context"
	"io"

	"github.com/fwojciec/crawlrag"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Capturer implements crawlrag.Capturer at compile time.
var _ crawlrag.Capturer = (*Capturer)(nil)

// Capturer renders pages to PNG screenshots and PDF documents.
// Capturer is safe for concurrent use by multiple goroutines.
type Capturer struct {
	manager *BrowserManager
}

// NewCapturer creates a Capturer backed by the given browser manager.
func NewCapturer(manager *BrowserManager) *Capturer {
	return &Capturer{manager: manager}
}

// Screenshot navigates to the URL and returns a PNG screenshot.
// With fullPage set, the capture covers the entire scrollable page rather
// than just the viewport.
func (c *Capturer) Screenshot(ctx context.Context, url string, fullPage bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := c.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	data, err := page.Screenshot(fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, err
	}

	c.manager.IncrementPageCount()
	return data, nil
}

// PDF navigates to the URL and returns a PDF rendering of the page.
func (c *Capturer) PDF(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := c.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	r, err := page.PDF(&proto.PagePrintToPDF{})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	c.manager.IncrementPageCount()
	return data, nil
}
