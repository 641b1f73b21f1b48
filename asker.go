package crawlrag

import "context"

// Asker provides natural language question answering over crawled content.
type Asker interface {
	// Ask answers a question using previously crawled pages as grounding.
	// Returns ENOTFOUND if no relevant content has been crawled.
	Ask(ctx context.Context, question string) (string, error)
}
