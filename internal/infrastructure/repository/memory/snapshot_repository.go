package memory

import (
	"context"
	"sync"

	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
)

type SnapshotRepository struct {
	mu      sync.RWMutex
	records map[string]snapshot.Record
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{records: make(map[string]snapshot.Record)}
}

func (r *SnapshotRepository) Get(_ context.Context, key string) (snapshot.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[key]
	if !ok {
		return snapshot.Record{}, false, nil
	}
	record.Payload = append([]byte(nil), record.Payload...)
	return record, true, nil
}

func (r *SnapshotRepository) Upsert(_ context.Context, record snapshot.Record) error {
	record.Payload = append([]byte(nil), record.Payload...)

	r.mu.Lock()
	r.records[record.Key] = record
	r.mu.Unlock()
	return nil
}
