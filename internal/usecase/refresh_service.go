package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

const (
	defaultMedalsRefreshInterval = 60 * time.Second
	defaultEventsRefreshInterval = 30 * time.Second
	defaultRefreshWorkers        = 2
)

// RefreshConfig tunes the background refresh loops. Zero values pick the
// polling cadence the frontend historically used.
type RefreshConfig struct {
	MedalsInterval time.Duration
	EventsInterval time.Duration
	Workers        int
}

// RefreshService keeps the medal and schedule caches warm and feeds the
// notification pipeline from the refreshed data.
type RefreshService struct {
	medals        *MedalService
	schedules     *ScheduleService
	notifications *NotificationService
	logger        *logging.Logger
	pool          *ants.Pool

	medalsInterval time.Duration
	eventsInterval time.Duration

	mu         sync.Mutex
	prevMedals *medals.MedalCount
}

func NewRefreshService(
	medalService *MedalService,
	scheduleService *ScheduleService,
	notificationService *NotificationService,
	logger *logging.Logger,
	cfg RefreshConfig,
) (*RefreshService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MedalsInterval <= 0 {
		cfg.MedalsInterval = defaultMedalsRefreshInterval
	}
	if cfg.EventsInterval <= 0 {
		cfg.EventsInterval = defaultEventsRefreshInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultRefreshWorkers
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &RefreshService{
		medals:         medalService,
		schedules:      scheduleService,
		notifications:  notificationService,
		logger:         logger,
		pool:           pool,
		medalsInterval: cfg.MedalsInterval,
		eventsInterval: cfg.EventsInterval,
	}, nil
}

// Run blocks until ctx is done, refreshing medals and events on their own
// cadences. Both caches are warmed once up front.
func (s *RefreshService) Run(ctx context.Context) error {
	s.submit(ctx, "medals", s.RefreshMedals)
	s.submit(ctx, "events", s.RefreshEvents)

	medalsTicker := time.NewTicker(s.medalsInterval)
	defer medalsTicker.Stop()
	eventsTicker := time.NewTicker(s.eventsInterval)
	defer eventsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-medalsTicker.C:
			s.submit(ctx, "medals", s.RefreshMedals)
		case <-eventsTicker.C:
			s.submit(ctx, "events", s.RefreshEvents)
		}
	}
}

// Close releases the worker pool. Call after Run has returned.
func (s *RefreshService) Close() {
	s.pool.Release()
}

// TriggerAll refreshes both data sets synchronously. Used by the internal
// jobs endpoint.
func (s *RefreshService) TriggerAll(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "RefreshService.TriggerAll")
	defer span.End()

	if err := s.RefreshMedals(ctx); err != nil {
		return err
	}
	return s.RefreshEvents(ctx)
}

// RefreshMedals fetches a fresh tally and announces medal-count increases
// for the tracked team.
func (s *RefreshService) RefreshMedals(ctx context.Context) error {
	result, err := s.medals.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh medals: %w", err)
	}
	if result.ServedFromCache || result.Tally.ErrorMessage != "" {
		// Stale or terminal data must not move the notification baseline.
		return nil
	}

	current := result.Tally.Tracked.Medals
	previous := s.swapPreviousMedals(current)
	if previous == nil {
		return nil
	}

	sent, err := s.notifications.NotifyMedalProgress(ctx, *previous, current)
	if err != nil {
		return fmt.Errorf("notify medal progress: %w", err)
	}
	if sent > 0 {
		s.logger.InfoContext(ctx, "medal notifications sent", "count", sent)
	}
	return nil
}

// RefreshEvents fetches the tracked team's schedule and announces events
// that are live right now.
func (s *RefreshService) RefreshEvents(ctx context.Context) error {
	result, err := s.schedules.Refresh(ctx, medals.TrackedNOC)
	if err != nil {
		return fmt.Errorf("refresh events: %w", err)
	}

	sent, err := s.notifications.NotifyLiveEvents(ctx, result.Events)
	if err != nil {
		return fmt.Errorf("notify live events: %w", err)
	}
	if sent > 0 {
		s.logger.InfoContext(ctx, "live event notifications sent", "count", sent)
	}
	return nil
}

func (s *RefreshService) submit(ctx context.Context, kind string, job func(context.Context) error) {
	err := s.pool.Submit(func() {
		if err := job(ctx); err != nil {
			s.logger.WarnContext(ctx, "background refresh failed", "kind", kind, "error", err)
		}
	})
	if err != nil {
		s.logger.WarnContext(ctx, "submit refresh job failed", "kind", kind, "error", err)
	}
}

func (s *RefreshService) swapPreviousMedals(current medals.MedalCount) *medals.MedalCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.prevMedals
	s.prevMedals = &current
	return previous
}
