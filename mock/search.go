package mock

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

var _ crawlrag.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of crawlrag.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts crawlrag.SearchOptions) ([]crawlrag.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts crawlrag.SearchOptions) ([]crawlrag.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}

var _ crawlrag.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of crawlrag.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}
