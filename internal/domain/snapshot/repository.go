package snapshot

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (Record, bool, error)
	Upsert(ctx context.Context, record Record) error
}
