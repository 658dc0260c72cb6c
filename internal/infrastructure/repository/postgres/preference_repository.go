package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oranjelive/medaltracker/internal/domain/preference"
	qb "github.com/oranjelive/medaltracker/internal/platform/querybuilder"
)

type FavoriteCountryRepository struct {
	db *sqlx.DB
}

func NewFavoriteCountryRepository(db *sqlx.DB) *FavoriteCountryRepository {
	return &FavoriteCountryRepository{db: db}
}

func (r *FavoriteCountryRepository) GetByUser(ctx context.Context, userID string) (preference.FavoriteCountry, bool, error) {
	query, args, err := qb.Select("*").
		From("favorite_countries").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return preference.FavoriteCountry{}, false, fmt.Errorf("build get favorite country query: %w", err)
	}

	var row favoriteCountryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return preference.FavoriteCountry{}, false, nil
		}
		return preference.FavoriteCountry{}, false, fmt.Errorf("get favorite country: %w", err)
	}

	return preference.FavoriteCountry{
		UserID:    row.UserID,
		NOC:       row.NOC,
		UpdatedAt: row.UpdatedAt,
	}, true, nil
}

func (r *FavoriteCountryRepository) Upsert(ctx context.Context, favorite preference.FavoriteCountry) error {
	insertModel := favoriteCountryInsertModel{
		UserID: favorite.UserID,
		NOC:    favorite.NOC,
	}

	query, args, err := qb.InsertModel("favorite_countries", insertModel, `ON CONFLICT (user_id)
DO UPDATE SET
    noc = EXCLUDED.noc,
    updated_at = NOW()
RETURNING updated_at`)
	if err != nil {
		return fmt.Errorf("build favorite country upsert query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert favorite country: %w", err)
	}
	defer rows.Close()

	var updatedAt time.Time
	if rows.Next() {
		if err := rows.Scan(&updatedAt); err != nil {
			return fmt.Errorf("scan favorite country updated_at: %w", err)
		}
		return nil
	}

	return fmt.Errorf("upsert favorite country: no row returned")
}
