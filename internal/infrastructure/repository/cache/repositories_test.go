package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oranjelive/medaltracker/internal/domain/preference"
	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
	"github.com/oranjelive/medaltracker/internal/infrastructure/repository/memory"
	basecache "github.com/oranjelive/medaltracker/internal/platform/cache"
)

type countingSnapshotRepo struct {
	next  snapshot.Repository
	reads atomic.Int64
}

func (r *countingSnapshotRepo) Get(ctx context.Context, key string) (snapshot.Record, bool, error) {
	r.reads.Add(1)
	return r.next.Get(ctx, key)
}

func (r *countingSnapshotRepo) Upsert(ctx context.Context, record snapshot.Record) error {
	return r.next.Upsert(ctx, record)
}

func TestSnapshotRepository_ServesRepeatReadsFromCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	counting := &countingSnapshotRepo{next: memory.NewSnapshotRepository()}
	repo := NewSnapshotRepository(counting, basecache.NewStore(time.Minute))

	saved := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, snapshot.Record{
		Key:           snapshot.KeyMedals,
		Payload:       []byte(`{"gold":2}`),
		SavedAt:       saved,
		Source:        "olympics-page",
		SchemaVersion: 1,
	}))

	first, exists, err := repo.Get(ctx, snapshot.KeyMedals)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "olympics-page", first.Source)
	require.Equal(t, saved, first.SavedAt)

	_, _, err = repo.Get(ctx, snapshot.KeyMedals)
	require.NoError(t, err)
	require.Equal(t, int64(1), counting.reads.Load())
}

func TestSnapshotRepository_UpsertInvalidatesCachedRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSnapshotRepository(memory.NewSnapshotRepository(), basecache.NewStore(time.Minute))

	_, exists, err := repo.Get(ctx, snapshot.KeyEvents)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.Upsert(ctx, snapshot.Record{
		Key:     snapshot.KeyEvents,
		Payload: []byte(`{"events":[]}`),
		SavedAt: time.Now().UTC(),
		Source:  "chances-feed",
	}))

	record, exists, err := repo.Get(ctx, snapshot.KeyEvents)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, []byte(`{"events":[]}`), record.Payload)
}

func TestSnapshotRepository_CachedPayloadIsIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSnapshotRepository(memory.NewSnapshotRepository(), basecache.NewStore(time.Minute))

	require.NoError(t, repo.Upsert(ctx, snapshot.Record{
		Key:     snapshot.KeyMedals,
		Payload: []byte(`{"gold":1}`),
		SavedAt: time.Now().UTC(),
	}))

	record, _, err := repo.Get(ctx, snapshot.KeyMedals)
	require.NoError(t, err)
	record.Payload[1] = 'X'

	again, _, err := repo.Get(ctx, snapshot.KeyMedals)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"gold":1}`), again.Payload)
}

func TestFavoriteCountryRepository_UpsertInvalidatesUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFavoriteCountryRepository(memory.NewFavoriteCountryRepository(), basecache.NewStore(time.Minute))

	_, exists, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.Upsert(ctx, preference.FavoriteCountry{
		UserID:    "user-1",
		NOC:       "NOR",
		UpdatedAt: time.Now().UTC(),
	}))

	favorite, exists, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "NOR", favorite.NOC)

	_, exists, err = repo.GetByUser(ctx, "user-2")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNotificationMarkerRepository_MarkSentPrimesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewNotificationMarkerRepository(memory.NewNotificationMarkerRepository(), basecache.NewStore(time.Minute))

	exists, err := repo.Exists(ctx, "gold-3")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.MarkSent(ctx, "gold-3", time.Now().UTC()))

	exists, err = repo.Exists(ctx, "gold-3")
	require.NoError(t, err)
	require.True(t, exists)
}
