package mock

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

var _ crawlrag.Capturer = (*Capturer)(nil)

// Capturer is a mock implementation of crawlrag.Capturer.
type Capturer struct {
	ScreenshotFn func(ctx context.Context, url string, fullPage bool) ([]byte, error)
	PDFFn        func(ctx context.Context, url string) ([]byte, error)
}

func (c *Capturer) Screenshot(ctx context.Context, url string, fullPage bool) ([]byte, error) {
	return c.ScreenshotFn(ctx, url, fullPage)
}

func (c *Capturer) PDF(ctx context.Context, url string) ([]byte, error) {
	return c.PDFFn(ctx, url)
}
