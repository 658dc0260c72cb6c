package cache

import (
	"context"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/notification"
	"github.com/oranjelive/medaltracker/internal/domain/preference"
	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
	basecache "github.com/oranjelive/medaltracker/internal/platform/cache"
)

// SnapshotRepository is a read-through cache in front of the persisted
// cache envelopes. Upserts invalidate so readers never see a stale payload
// after a refresh wrote a newer one.
type SnapshotRepository struct {
	next  snapshot.Repository
	cache *basecache.Store
}

func NewSnapshotRepository(next snapshot.Repository, cache *basecache.Store) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: cache}
}

func (r *SnapshotRepository) Get(ctx context.Context, key string) (snapshot.Record, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, snapshotKey(key), func(ctx context.Context) (any, error) {
		record, exists, err := r.next.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return cachedSnapshot{record: cloneRecord(record), exists: exists}, nil
	})
	if err != nil {
		return snapshot.Record{}, false, err
	}

	cached, _ := v.(cachedSnapshot)
	return cloneRecord(cached.record), cached.exists, nil
}

func (r *SnapshotRepository) Upsert(ctx context.Context, record snapshot.Record) error {
	if err := r.next.Upsert(ctx, record); err != nil {
		return err
	}
	r.cache.Delete(ctx, snapshotKey(record.Key))
	return nil
}

type cachedSnapshot struct {
	record snapshot.Record
	exists bool
}

func cloneRecord(record snapshot.Record) snapshot.Record {
	out := record
	out.Payload = append([]byte(nil), record.Payload...)
	return out
}

func snapshotKey(key string) string {
	return "snapshot:" + key
}

// FavoriteCountryRepository caches per-user favorites.
type FavoriteCountryRepository struct {
	next  preference.Repository
	cache *basecache.Store
}

func NewFavoriteCountryRepository(next preference.Repository, cache *basecache.Store) *FavoriteCountryRepository {
	return &FavoriteCountryRepository{next: next, cache: cache}
}

func (r *FavoriteCountryRepository) GetByUser(ctx context.Context, userID string) (preference.FavoriteCountry, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, favoriteKey(userID), func(ctx context.Context) (any, error) {
		favorite, exists, err := r.next.GetByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedFavorite{favorite: favorite, exists: exists}, nil
	})
	if err != nil {
		return preference.FavoriteCountry{}, false, err
	}

	cached, _ := v.(cachedFavorite)
	return cached.favorite, cached.exists, nil
}

func (r *FavoriteCountryRepository) Upsert(ctx context.Context, favorite preference.FavoriteCountry) error {
	if err := r.next.Upsert(ctx, favorite); err != nil {
		return err
	}
	r.cache.Delete(ctx, favoriteKey(favorite.UserID))
	return nil
}

type cachedFavorite struct {
	favorite preference.FavoriteCountry
	exists   bool
}

func favoriteKey(userID string) string {
	return "favorite:user:" + userID
}

// NotificationMarkerRepository caches dedupe lookups. A marker never flips
// back to unsent, so a positive Exists can be cached on MarkSent directly.
type NotificationMarkerRepository struct {
	next  notification.Repository
	cache *basecache.Store
}

func NewNotificationMarkerRepository(next notification.Repository, cache *basecache.Store) *NotificationMarkerRepository {
	return &NotificationMarkerRepository{next: next, cache: cache}
}

func (r *NotificationMarkerRepository) Exists(ctx context.Context, dedupeKey string) (bool, error) {
	v, err := r.cache.GetOrLoad(ctx, markerKey(dedupeKey), func(ctx context.Context) (any, error) {
		return r.next.Exists(ctx, dedupeKey)
	})
	if err != nil {
		return false, err
	}

	exists, _ := v.(bool)
	return exists, nil
}

func (r *NotificationMarkerRepository) MarkSent(ctx context.Context, dedupeKey string, sentAt time.Time) error {
	if err := r.next.MarkSent(ctx, dedupeKey, sentAt); err != nil {
		return err
	}
	r.cache.Set(ctx, markerKey(dedupeKey), true)
	return nil
}

func markerKey(dedupeKey string) string {
	return "notif-marker:" + dedupeKey
}
