package mock

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

var _ crawlrag.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of crawlrag.DocumentService.
type DocumentService struct {
	UpsertDocumentFn    func(ctx context.Context, doc *crawlrag.Document) error
	FindDocumentByURLFn func(ctx context.Context, sourceURL string) (*crawlrag.Document, error)
	FindDocumentsFn     func(ctx context.Context, filter crawlrag.DocumentFilter) ([]*crawlrag.Document, error)
	DeleteDocumentFn    func(ctx context.Context, sourceURL string) error
}

func (s *DocumentService) UpsertDocument(ctx context.Context, doc *crawlrag.Document) error {
	return s.UpsertDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByURL(ctx context.Context, sourceURL string) (*crawlrag.Document, error) {
	return s.FindDocumentByURLFn(ctx, sourceURL)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter crawlrag.DocumentFilter) ([]*crawlrag.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, sourceURL string) error {
	return s.DeleteDocumentFn(ctx, sourceURL)
}
