package crawl

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff schedule for fetch retries.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithBackoff calls fetch until it succeeds or the delay schedule is
// exhausted, making one attempt per delay plus the initial attempt. The
// last fetch error is returned when all attempts fail; cancelling the
// context interrupts the backoff sleep.
func fetchWithBackoff(ctx context.Context, url string, fetch func(context.Context, string) (string, error), delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	if err == nil {
		return html, nil
	}

	for _, delay := range delays {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}

		html, err = fetch(ctx, url)
		if err == nil {
			return html, nil
		}
	}

	return "", err
}
