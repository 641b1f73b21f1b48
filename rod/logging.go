package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/crawlrag"
)

// Ensure the decorators implement the interfaces they wrap.
var (
	_ crawlrag.Fetcher  = (*LoggingFetcher)(nil)
	_ crawlrag.Capturer = (*LoggingCapturer)(nil)
)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   crawlrag.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next crawlrag.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingCapturer wraps a Capturer with debug logging.
type LoggingCapturer struct {
	next   crawlrag.Capturer
	logger *slog.Logger
}

// NewLoggingCapturer creates a new LoggingCapturer.
func NewLoggingCapturer(next crawlrag.Capturer, logger *slog.Logger) *LoggingCapturer {
	return &LoggingCapturer{next: next, logger: logger}
}

// Screenshot logs the capture and delegates to the wrapped capturer.
func (c *LoggingCapturer) Screenshot(ctx context.Context, url string, fullPage bool) (data []byte, err error) {
	defer func(begin time.Time) {
		c.logger.Info("screenshot",
			"url", url,
			"full_page", fullPage,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Screenshot(ctx, url, fullPage)
}

// PDF logs the capture and delegates to the wrapped capturer.
func (c *LoggingCapturer) PDF(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		c.logger.Info("pdf",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.PDF(ctx, url)
}
