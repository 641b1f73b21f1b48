package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/crawlrag"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ crawlrag.DocumentService = (*DocumentService)(nil)

// DocumentService implements crawlrag.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// UpsertDocument creates a document or overwrites the row with the same
// source URL. Re-crawls replace content, hash, embedding and timestamp but
// preserve the original document ID.
func (s *DocumentService) UpsertDocument(ctx context.Context, doc *crawlrag.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CrawledAt.IsZero() {
		doc.CrawledAt = time.Now().UTC()
	}
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, content, content_hash, embedding, crawled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			embedding = excluded.embedding,
			crawled_at = excluded.crawled_at
	`, doc.ID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		encodeEmbedding(doc.Embedding), doc.CrawledAt.Format(time.RFC3339))

	return err
}

// FindDocumentByURL retrieves a document by source URL.
func (s *DocumentService) FindDocumentByURL(ctx context.Context, sourceURL string) (*crawlrag.Document, error) {
	var doc crawlrag.Document
	var embedding []byte
	var crawledAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, embedding, crawled_at
		FROM documents
		WHERE source_url = ?
	`, sourceURL).Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
		&doc.ContentHash, &embedding, &crawledAt)

	if err == sql.ErrNoRows {
		return nil, crawlrag.Errorf(crawlrag.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Embedding = decodeEmbedding(embedding)
	doc.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, most recently
// crawled first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter crawlrag.DocumentFilter) ([]*crawlrag.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, embedding, crawled_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.URLPattern != nil {
		query.WriteString(" AND source_url LIKE ?")
		args = append(args, "%"+*filter.URLPattern+"%")
	}

	query.WriteString(" ORDER BY crawled_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*crawlrag.Document
	for rows.Next() {
		var doc crawlrag.Document
		var embedding []byte
		var crawledAt string

		if err := rows.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
			&doc.ContentHash, &embedding, &crawledAt); err != nil {
			return nil, err
		}

		doc.Embedding = decodeEmbedding(embedding)
		doc.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document by source URL.
func (s *DocumentService) DeleteDocument(ctx context.Context, sourceURL string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE source_url = ?", sourceURL)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return crawlrag.Errorf(crawlrag.ENOTFOUND, "document not found")
	}

	return nil
}
