package webpush

import (
	"context"

	"github.com/oranjelive/medaltracker/internal/domain/notification"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

// LogSink writes notifications to the application log. Useful in local
// setups without a push webhook.
type LogSink struct {
	logger *logging.Logger
}

func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(ctx context.Context, msg notification.Message) (bool, error) {
	s.logger.InfoContext(ctx, "notification (log sink)",
		"title", msg.Title,
		"body", msg.Body,
		"dedupe_key", msg.DedupeKey,
	)
	return true, nil
}
