package sqlite

import (
	"context"
	"math"
	"sort"

	"github.com/fwojciec/crawlrag"
)

// Compile-time interface verification.
var _ crawlrag.SearchService = (*SearchService)(nil)

// DefaultSearchLimit is the number of results returned when the caller
// doesn't specify one.
const DefaultSearchLimit = 5

// SearchService implements semantic search by comparing a query embedding
// against the embeddings stored alongside documents. The corpus for a local
// crawl store is small enough that a full scan with in-memory cosine
// ranking beats maintaining a vector index.
type SearchService struct {
	db       *DB
	embedder crawlrag.Embedder
}

// NewSearchService creates a SearchService that embeds queries with the
// given embedder.
func NewSearchService(db *DB, embedder crawlrag.Embedder) *SearchService {
	return &SearchService{db: db, embedder: embedder}
}

// Search embeds the query and returns stored documents ordered by cosine
// similarity. Documents without embeddings are skipped.
func (s *SearchService) Search(ctx context.Context, query string, opts crawlrag.SearchOptions) ([]crawlrag.SearchResult, error) {
	if query == "" {
		return nil, crawlrag.Errorf(crawlrag.EINVALID, "search query required")
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	filter := crawlrag.DocumentFilter{}
	if opts.SourceFilter != "" {
		filter.URLPattern = &opts.SourceFilter
	}

	docs, err := NewDocumentService(s.db).FindDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	var results []crawlrag.SearchResult
	for _, doc := range docs {
		if len(doc.Embedding) == 0 {
			continue
		}
		score := cosineSimilarity(queryVec, doc.Embedding)
		if score < opts.MinScore {
			continue
		}
		results = append(results, crawlrag.SearchResult{Document: doc, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score 0.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
