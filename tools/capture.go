package tools

import (
	"context"
	"encoding/base64"

	"github.com/fwojciec/crawlrag"
)

// Screenshot captures a PNG screenshot of the page and returns it as a
// data URI.
func (s *Service) Screenshot(ctx context.Context, url string, fullPage bool) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}

	data, err := s.Capturer.Screenshot(ctx, url, fullPage)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", crawlrag.Errorf(crawlrag.EINTERNAL, "no screenshot was captured")
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// PDF renders the page to PDF and returns it as a data URI.
func (s *Service) PDF(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "url required")
	}

	data, err := s.Capturer.PDF(ctx, url)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", crawlrag.Errorf(crawlrag.EINTERNAL, "no PDF was generated")
	}

	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data), nil
}
