package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_UpsertDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates a document with generated fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		doc := &crawlrag.Document{
			SourceURL: "https://example.com/docs",
			Title:     "Docs",
			Content:   "# Docs\n\nSome content.",
			Embedding: []float32{0.1, 0.2, 0.3},
		}

		require.NoError(t, s.UpsertDocument(ctx, doc))
		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.ContentHash)
		assert.False(t, doc.CrawledAt.IsZero())

		got, err := s.FindDocumentByURL(ctx, "https://example.com/docs")
		require.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
		assert.Equal(t, "Docs", got.Title)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, got.Embedding)
	})

	t.Run("recrawl overwrites by source URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		first := &crawlrag.Document{
			SourceURL: "https://example.com/page",
			Content:   "old content",
			Embedding: []float32{1, 0},
		}
		require.NoError(t, s.UpsertDocument(ctx, first))

		second := &crawlrag.Document{
			SourceURL: "https://example.com/page",
			Content:   "new content",
			Embedding: []float32{0, 1},
		}
		require.NoError(t, s.UpsertDocument(ctx, second))

		got, err := s.FindDocumentByURL(ctx, "https://example.com/page")
		require.NoError(t, err)
		assert.Equal(t, "new content", got.Content)
		assert.Equal(t, []float32{0, 1}, got.Embedding)

		docs, err := s.FindDocuments(ctx, crawlrag.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 1, "upsert must not create a second row")
	})

	t.Run("validates before persisting", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))

		err := s.UpsertDocument(context.Background(), &crawlrag.Document{Content: "no url"})

		assert.Equal(t, crawlrag.EINVALID, crawlrag.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	seedDocuments := func(t *testing.T, s *sqlite.DocumentService) {
		t.Helper()
		ctx := context.Background()
		base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		for i, u := range []string{
			"https://example.com/docs/intro",
			"https://example.com/docs/api",
			"https://example.com/blog/post",
		} {
			require.NoError(t, s.UpsertDocument(ctx, &crawlrag.Document{
				SourceURL: u,
				Content:   "content of " + u,
				CrawledAt: base.Add(time.Duration(i) * time.Hour),
			}))
		}
	}

	t.Run("filters by URL pattern", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		seedDocuments(t, s)

		pattern := "/docs/"
		docs, err := s.FindDocuments(context.Background(), crawlrag.DocumentFilter{URLPattern: &pattern})

		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("orders by crawl time descending", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		seedDocuments(t, s)

		docs, err := s.FindDocuments(context.Background(), crawlrag.DocumentFilter{})

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "https://example.com/blog/post", docs[0].SourceURL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		seedDocuments(t, s)

		docs, err := s.FindDocuments(context.Background(), crawlrag.DocumentFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "https://example.com/docs/api", docs[0].SourceURL)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes the document", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.UpsertDocument(ctx, &crawlrag.Document{
			SourceURL: "https://example.com/gone",
			Content:   "content",
		}))

		require.NoError(t, s.DeleteDocument(ctx, "https://example.com/gone"))

		_, err := s.FindDocumentByURL(ctx, "https://example.com/gone")
		assert.Equal(t, crawlrag.ENOTFOUND, crawlrag.ErrorCode(err))
	})

	t.Run("missing document returns not found", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))

		err := s.DeleteDocument(context.Background(), "https://example.com/never")

		assert.Equal(t, crawlrag.ENOTFOUND, crawlrag.ErrorCode(err))
	})
}
