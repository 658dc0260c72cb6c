package memory

import (
	"context"
	"sync"

	"github.com/oranjelive/medaltracker/internal/domain/preference"
)

type FavoriteCountryRepository struct {
	mu        sync.RWMutex
	favorites map[string]preference.FavoriteCountry
}

func NewFavoriteCountryRepository() *FavoriteCountryRepository {
	return &FavoriteCountryRepository{favorites: make(map[string]preference.FavoriteCountry)}
}

func (r *FavoriteCountryRepository) GetByUser(_ context.Context, userID string) (preference.FavoriteCountry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favorite, ok := r.favorites[userID]
	return favorite, ok, nil
}

func (r *FavoriteCountryRepository) Upsert(_ context.Context, favorite preference.FavoriteCountry) error {
	r.mu.Lock()
	r.favorites[favorite.UserID] = favorite
	r.mu.Unlock()
	return nil
}
