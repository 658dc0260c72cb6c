package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
	qb "github.com/oranjelive/medaltracker/internal/platform/querybuilder"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Get(ctx context.Context, key string) (snapshot.Record, bool, error) {
	query, args, err := qb.Select("*").
		From("cache_envelopes").
		Where(qb.Eq("cache_key", key)).
		ToSQL()
	if err != nil {
		return snapshot.Record{}, false, fmt.Errorf("build get snapshot query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return snapshot.Record{}, false, nil
		}
		return snapshot.Record{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	return snapshot.Record{
		Key:           row.CacheKey,
		Payload:       append([]byte(nil), row.Payload...),
		SavedAt:       row.SavedAt,
		Source:        row.Source,
		SchemaVersion: row.SchemaVersion,
	}, true, nil
}

func (r *SnapshotRepository) Upsert(ctx context.Context, record snapshot.Record) error {
	insertModel := snapshotInsertModel{
		CacheKey:      record.Key,
		Payload:       record.Payload,
		SavedAt:       record.SavedAt,
		Source:        record.Source,
		SchemaVersion: record.SchemaVersion,
	}

	query, args, err := qb.InsertModel("cache_envelopes", insertModel, `ON CONFLICT (cache_key)
DO UPDATE SET
    payload = EXCLUDED.payload,
    saved_at = EXCLUDED.saved_at,
    source = EXCLUDED.source,
    schema_version = EXCLUDED.schema_version,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build snapshot upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
