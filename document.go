package crawlrag

import (
	"context"
	"time"
)

// Document represents a crawled page persisted for retrieval. Documents are
// keyed by source URL: re-crawling a URL overwrites the stored content and
// embedding rather than creating a second row.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"embedding,omitempty"`
	CrawledAt   time.Time `json:"crawledAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentService represents a service for managing stored documents.
type DocumentService interface {
	// UpsertDocument creates a document or overwrites the existing one
	// with the same source URL.
	UpsertDocument(ctx context.Context, doc *Document) error

	// FindDocumentByURL retrieves a document by source URL.
	// Returns ENOTFOUND if no document exists for the URL.
	FindDocumentByURL(ctx context.Context, sourceURL string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document by source URL.
	// Returns ENOTFOUND if no document exists for the URL.
	DeleteDocument(ctx context.Context, sourceURL string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	// URLPattern filters documents whose source URL contains the substring.
	URLPattern *string `json:"urlPattern"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
