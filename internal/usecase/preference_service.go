package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/preference"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

type PreferenceService struct {
	favorites preference.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewPreferenceService(favorites preference.Repository, logger *logging.Logger) *PreferenceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PreferenceService{
		favorites: favorites,
		logger:    logger,
		now:       time.Now,
	}
}

// GetFavoriteCountry returns the user's favorite committee, falling back to
// the default when nothing was stored or the stored value is unusable.
func (s *PreferenceService) GetFavoriteCountry(ctx context.Context, userID string) (preference.FavoriteCountry, error) {
	ctx, span := startUsecaseSpan(ctx, "PreferenceService.GetFavoriteCountry")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return preference.FavoriteCountry{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	favorite, exists, err := s.favorites.GetByUser(ctx, userID)
	if err != nil {
		return preference.FavoriteCountry{}, fmt.Errorf("get favorite country: %w", err)
	}
	if !exists {
		return preference.FavoriteCountry{UserID: userID, NOC: preference.DefaultNOC}, nil
	}

	noc, ok := preference.NormalizeNOC(favorite.NOC)
	if !ok {
		// Legacy rows may carry junk, serve the default instead of failing.
		return preference.FavoriteCountry{UserID: userID, NOC: preference.DefaultNOC}, nil
	}
	favorite.NOC = noc
	return favorite, nil
}

// SetFavoriteCountry stores the user's favorite committee.
func (s *PreferenceService) SetFavoriteCountry(ctx context.Context, userID, rawNOC string) (preference.FavoriteCountry, error) {
	ctx, span := startUsecaseSpan(ctx, "PreferenceService.SetFavoriteCountry")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return preference.FavoriteCountry{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	noc, ok := preference.NormalizeNOC(rawNOC)
	if !ok {
		return preference.FavoriteCountry{}, fmt.Errorf("%w: favorite country must be a three-letter code", ErrInvalidInput)
	}

	favorite := preference.FavoriteCountry{
		UserID:    userID,
		NOC:       noc,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.favorites.Upsert(ctx, favorite); err != nil {
		return preference.FavoriteCountry{}, fmt.Errorf("save favorite country: %w", err)
	}

	s.logger.InfoContext(ctx, "favorite country updated", "user_id", userID, "noc", noc)
	return favorite, nil
}
