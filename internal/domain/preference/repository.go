package preference

import "context"

// Repository exposes favorite-country persistence operations.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (FavoriteCountry, bool, error)
	Upsert(ctx context.Context, favorite FavoriteCountry) error
}
