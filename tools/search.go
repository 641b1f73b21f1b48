package tools

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

// SearchContent searches previously crawled content by semantic similarity
// and renders the matches as a markdown result list.
func (s *Service) SearchContent(ctx context.Context, query string, limit int, sourceFilter string) (string, error) {
	if query == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "query required")
	}

	results, err := s.Search.Search(ctx, query, crawlrag.SearchOptions{
		Limit:        limit,
		SourceFilter: sourceFilter,
	})
	if err != nil {
		return "", err
	}

	return renderSearchResults(query, results), nil
}

// Ask answers a natural language question about the crawled corpus.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", crawlrag.Errorf(crawlrag.EINVALID, "question required")
	}
	return s.Asker.Ask(ctx, question)
}
