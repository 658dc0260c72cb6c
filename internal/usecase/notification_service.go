package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/domain/notification"
	"github.com/oranjelive/medaltracker/internal/domain/schedule"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

type NotificationService struct {
	markers notification.Repository
	sink    notification.Sink
	logger  *logging.Logger
	now     func() time.Time
}

func NewNotificationService(
	markers notification.Repository,
	sink notification.Sink,
	logger *logging.Logger,
) *NotificationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NotificationService{
		markers: markers,
		sink:    sink,
		logger:  logger,
		now:     time.Now,
	}
}

// NotifyMedalProgress sends one message per medal color whose count grew
// between two tallies. Returns how many messages actually went out.
func (s *NotificationService) NotifyMedalProgress(ctx context.Context, previous, current medals.MedalCount) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "NotificationService.NotifyMedalProgress")
	defer span.End()

	deltas := []struct {
		medalType string
		from, to  int
	}{
		{notification.MedalGoud, previous.Gold, current.Gold},
		{notification.MedalZilver, previous.Silver, current.Silver},
		{notification.MedalBrons, previous.Bronze, current.Bronze},
	}

	sent := 0
	for _, delta := range deltas {
		if delta.to <= delta.from {
			continue
		}
		delivered, err := s.deliver(ctx, notification.MedalUpdate(delta.medalType, delta.from, delta.to))
		if err != nil {
			return sent, err
		}
		if delivered {
			sent++
		}
	}
	return sent, nil
}

// NotifyLiveEvents sends one message per event that is currently live. The
// marker repository keeps repeated sweeps from re-announcing the same event.
func (s *NotificationService) NotifyLiveEvents(ctx context.Context, events []schedule.Event) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "NotificationService.NotifyLiveEvents")
	defer span.End()

	sent := 0
	for _, event := range events {
		if event.Status != schedule.StatusLive {
			continue
		}
		delivered, err := s.deliver(ctx, notification.EventLive(event.ID, event.Name, event.Date))
		if err != nil {
			return sent, err
		}
		if delivered {
			sent++
		}
	}
	return sent, nil
}

// SendTest delivers a test message that is never deduped away.
func (s *NotificationService) SendTest(ctx context.Context) (notification.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "NotificationService.SendTest")
	defer span.End()

	msg := notification.Test(s.now())
	delivered, err := s.deliver(ctx, msg)
	if err != nil {
		return notification.Message{}, err
	}
	if !delivered {
		return notification.Message{}, fmt.Errorf("%w: test notification was not delivered", ErrDependencyUnavailable)
	}
	return msg, nil
}

func (s *NotificationService) deliver(ctx context.Context, msg notification.Message) (bool, error) {
	exists, err := s.markers.Exists(ctx, msg.DedupeKey)
	if err != nil {
		return false, fmt.Errorf("check notification marker: %w", err)
	}
	if exists {
		s.logger.DebugContext(ctx, "notification suppressed", "dedupe_key", msg.DedupeKey)
		return false, nil
	}

	sent, err := s.sink.Notify(ctx, msg)
	if err != nil {
		return false, fmt.Errorf("send notification: %w", err)
	}
	if !sent {
		return false, nil
	}

	if err := s.markers.MarkSent(ctx, msg.DedupeKey, s.now().UTC()); err != nil {
		return true, fmt.Errorf("mark notification sent: %w", err)
	}
	s.logger.InfoContext(ctx, "notification sent", "dedupe_key", msg.DedupeKey, "title", msg.Title)
	return true, nil
}
