package memory

import (
	"context"
	"sync"
	"time"
)

type NotificationMarkerRepository struct {
	mu      sync.RWMutex
	markers map[string]time.Time
}

func NewNotificationMarkerRepository() *NotificationMarkerRepository {
	return &NotificationMarkerRepository{markers: make(map[string]time.Time)}
}

func (r *NotificationMarkerRepository) Exists(_ context.Context, dedupeKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.markers[dedupeKey]
	return ok, nil
}

func (r *NotificationMarkerRepository) MarkSent(_ context.Context, dedupeKey string, sentAt time.Time) error {
	r.mu.Lock()
	r.markers[dedupeKey] = sentAt
	r.mu.Unlock()
	return nil
}
