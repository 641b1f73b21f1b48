package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/crawlrag"
)

// Ensure LoggingGraphStore implements crawlrag.GraphStore.
var _ crawlrag.GraphStore = (*LoggingGraphStore)(nil)

// LoggingGraphStore wraps a GraphStore with debug logging on writes.
type LoggingGraphStore struct {
	next   crawlrag.GraphStore
	logger *slog.Logger
}

// NewLoggingGraphStore creates a new LoggingGraphStore.
func NewLoggingGraphStore(next crawlrag.GraphStore, logger *slog.Logger) *LoggingGraphStore {
	return &LoggingGraphStore{next: next, logger: logger}
}

// UpsertExtraction delegates to the wrapped store and logs the operation.
func (s *LoggingGraphStore) UpsertExtraction(ctx context.Context, ex crawlrag.Extraction) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("graph upsert",
			"entities", len(ex.Entities),
			"relations", len(ex.Relations),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertExtraction(ctx, ex)
}

// FindEntities delegates to the wrapped store.
func (s *LoggingGraphStore) FindEntities(ctx context.Context, kind crawlrag.EntityKind) ([]crawlrag.Entity, error) {
	return s.next.FindEntities(ctx, kind)
}

// FindRelations delegates to the wrapped store.
func (s *LoggingGraphStore) FindRelations(ctx context.Context, from crawlrag.EntityRef) ([]crawlrag.Relation, error) {
	return s.next.FindRelations(ctx, from)
}
