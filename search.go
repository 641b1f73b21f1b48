package crawlrag

import "context"

// Embedder generates embedding vectors for text.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// SearchService provides semantic search over stored documents.
type SearchService interface {
	// Search performs semantic search over crawled documents.
	// Returns documents ordered by similarity to the query.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Maximum number of results to return
	Limit int `json:"limit,omitempty"`

	// Only match documents whose source URL contains this substring
	SourceFilter string `json:"sourceFilter,omitempty"`

	// Minimum similarity score (0-1)
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Document *Document `json:"document"`
	Score    float32   `json:"score"`
}
