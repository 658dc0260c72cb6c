package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	qb "github.com/oranjelive/medaltracker/internal/platform/querybuilder"
)

type notificationMarkerInsertModel struct {
	DedupeKey string    `db:"dedupe_key"`
	SentAt    time.Time `db:"sent_at"`
}

type NotificationMarkerRepository struct {
	db *sqlx.DB
}

func NewNotificationMarkerRepository(db *sqlx.DB) *NotificationMarkerRepository {
	return &NotificationMarkerRepository{db: db}
}

func (r *NotificationMarkerRepository) Exists(ctx context.Context, dedupeKey string) (bool, error) {
	query, args, err := qb.Select("1").
		From("notification_markers").
		Where(qb.Eq("dedupe_key", dedupeKey)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build notification marker query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check notification marker: %w", err)
	}
	return true, nil
}

func (r *NotificationMarkerRepository) MarkSent(ctx context.Context, dedupeKey string, sentAt time.Time) error {
	insertModel := notificationMarkerInsertModel{
		DedupeKey: dedupeKey,
		SentAt:    sentAt,
	}

	query, args, err := qb.InsertModel("notification_markers", insertModel, `ON CONFLICT (dedupe_key) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("build notification marker insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}
	return nil
}
