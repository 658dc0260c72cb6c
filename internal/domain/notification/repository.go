package notification

import (
	"context"
	"time"
)

// Repository persists sent markers so dedupe survives restarts.
type Repository interface {
	Exists(ctx context.Context, dedupeKey string) (bool, error)
	MarkSent(ctx context.Context, dedupeKey string, sentAt time.Time) error
}

// Sink delivers a notification. Implementations report whether the message
// actually went out so dedupe markers are only written for real deliveries.
type Sink interface {
	Notify(ctx context.Context, msg Message) (bool, error)
}
