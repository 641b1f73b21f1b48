package mock

import (
	"context"

	"github.com/fwojciec/crawlrag"
)

var _ crawlrag.GraphStore = (*GraphStore)(nil)

// GraphStore is a mock implementation of crawlrag.GraphStore.
type GraphStore struct {
	UpsertExtractionFn func(ctx context.Context, ex crawlrag.Extraction) error
	FindEntitiesFn     func(ctx context.Context, kind crawlrag.EntityKind) ([]crawlrag.Entity, error)
	FindRelationsFn    func(ctx context.Context, from crawlrag.EntityRef) ([]crawlrag.Relation, error)
}

func (s *GraphStore) UpsertExtraction(ctx context.Context, ex crawlrag.Extraction) error {
	return s.UpsertExtractionFn(ctx, ex)
}

func (s *GraphStore) FindEntities(ctx context.Context, kind crawlrag.EntityKind) ([]crawlrag.Entity, error) {
	return s.FindEntitiesFn(ctx, kind)
}

func (s *GraphStore) FindRelations(ctx context.Context, from crawlrag.EntityRef) ([]crawlrag.Relation, error) {
	return s.FindRelationsFn(ctx, from)
}
