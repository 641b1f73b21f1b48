package sqlite

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/crawlrag"
)

// Compile-time interface verification.
var _ crawlrag.GraphStore = (*GraphStore)(nil)

// GraphStore implements crawlrag.GraphStore using SQLite.
// Entities merge by (kind, key) with later attribute values winning;
// relations are unique on their full tuple, so re-applying an extraction
// never creates duplicate rows. Link targets outside the extraction are
// materialized as stub WebPage entities so relations never dangle.
type GraphStore struct {
	db *DB
}

// NewGraphStore creates a new GraphStore.
func NewGraphStore(db *DB) *GraphStore {
	return &GraphStore{db: db}
}

// UpsertExtraction merges an extraction's entities and relations in a
// single transaction.
func (s *GraphStore) UpsertExtraction(ctx context.Context, ex crawlrag.Extraction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range ex.Entities {
		attrs, err := json.Marshal(e.Attributes)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entities (kind, key, attributes)
			VALUES (?, ?, ?)
			ON CONFLICT(kind, key) DO UPDATE SET
				attributes = excluded.attributes
		`, string(e.Kind), e.Key, string(attrs)); err != nil {
			return err
		}
	}

	for _, r := range ex.Relations {
		// Link targets are not part of the extraction's entity set; insert
		// a stub row so the relation has an endpoint. DO NOTHING keeps the
		// attributes of targets that have already been crawled.
		if r.Kind == crawlrag.RelationLinksTo {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO entities (kind, key, attributes)
				VALUES (?, ?, '{}')
				ON CONFLICT(kind, key) DO NOTHING
			`, string(r.To.Kind), r.To.Key); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO relations (kind, from_kind, from_key, to_kind, to_key)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(kind, from_kind, from_key, to_kind, to_key) DO NOTHING
		`, string(r.Kind), string(r.From.Kind), r.From.Key, string(r.To.Kind), r.To.Key); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindEntities retrieves stored entities of a kind, ordered by key.
// An empty kind matches all kinds.
func (s *GraphStore) FindEntities(ctx context.Context, kind crawlrag.EntityKind) ([]crawlrag.Entity, error) {
	query := "SELECT kind, key, attributes FROM entities"
	var args []any
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY kind, key"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []crawlrag.Entity
	for rows.Next() {
		var e crawlrag.Entity
		var attrs string
		if err := rows.Scan(&e.Kind, &e.Key, &attrs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(attrs), &e.Attributes); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	return entities, rows.Err()
}

// FindRelations retrieves stored relations originating at from, ordered by
// kind and target.
func (s *GraphStore) FindRelations(ctx context.Context, from crawlrag.EntityRef) ([]crawlrag.Relation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, from_kind, from_key, to_kind, to_key
		FROM relations
		WHERE from_kind = ? AND from_key = ?
		ORDER BY kind, to_kind, to_key
	`, string(from.Kind), from.Key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []crawlrag.Relation
	for rows.Next() {
		var r crawlrag.Relation
		if err := rows.Scan(&r.Kind, &r.From.Kind, &r.From.Key, &r.To.Kind, &r.To.Key); err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}

	return relations, rows.Err()
}
