package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oranjelive/medaltracker/external/chances"
	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/domain/schedule"
	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
	"github.com/oranjelive/medaltracker/internal/platform/cache"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

const (
	scheduleCachePrefix = "schedule:"

	errScheduleCached   = "Live event data unavailable, cached data shown."
	errScheduleFallback = "Could not load event data, fallback schedule shown."
	errScheduleEmpty    = "Live event data unavailable, fallback schedule shown."
)

type chanceFetcher interface {
	FetchAthleteChances(ctx context.Context, noc string) ([]chances.AthleteChance, error)
	FetchFeed(ctx context.Context, noc string) (chances.Feed, error)
}

// ScheduleResult is one committee's event list with provenance metadata.
type ScheduleResult struct {
	NOC             string
	CountryName     string
	Events          []schedule.Event
	ServedFromCache bool
	CacheSavedAt    time.Time
	CacheAgeSeconds int64
	ErrorMessage    string
	LastUpdated     time.Time
}

type ScheduleService struct {
	chances   chanceFetcher
	snapshots snapshot.Repository
	store     *cache.Store
	logger    *logging.Logger
	now       func() time.Time
}

func NewScheduleService(
	chanceClient chanceFetcher,
	snapshots snapshot.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		chances:   chanceClient,
		snapshots: snapshots,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// ListCountries returns the committees a schedule exists for.
func (s *ScheduleService) ListCountries() []schedule.CountryRef {
	return schedule.Countries()
}

// GetSchedule returns the event list for one committee, with medal chances
// attached where the external feed knows the discipline. An empty code
// resolves to the tracked Dutch team.
func (s *ScheduleService) GetSchedule(ctx context.Context, rawNOC string) (ScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.GetSchedule")
	defer span.End()

	noc := medals.NormalizeNOC(rawNOC)
	static, ok := schedule.StaticByNOC(noc)
	if !ok {
		return ScheduleResult{}, fmt.Errorf("%w: no schedule for committee %s", ErrNotFound, noc)
	}

	v, err := s.store.GetOrLoad(ctx, scheduleCachePrefix+noc, func(ctx context.Context) (any, error) {
		return s.loadSchedule(ctx, static), nil
	})
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("load schedule: %w", err)
	}

	result, _ := v.(ScheduleResult)
	return result, nil
}

// Refresh bypasses the in-process cache for one committee.
func (s *ScheduleService) Refresh(ctx context.Context, rawNOC string) (ScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.Refresh")
	defer span.End()

	noc := medals.NormalizeNOC(rawNOC)
	static, ok := schedule.StaticByNOC(noc)
	if !ok {
		return ScheduleResult{}, fmt.Errorf("%w: no schedule for committee %s", ErrNotFound, noc)
	}

	result := s.loadSchedule(ctx, static)
	s.store.Set(ctx, scheduleCachePrefix+noc, result)
	return result, nil
}

// ChancesForCountry exposes the raw medal-chances rows for one committee.
func (s *ScheduleService) ChancesForCountry(ctx context.Context, rawNOC string) ([]chances.AthleteChance, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.ChancesForCountry")
	defer span.End()

	noc := medals.NormalizeNOC(rawNOC)
	items, err := s.chances.FetchAthleteChances(ctx, noc)
	if err != nil {
		if chances.IsTransient(err) {
			return nil, fmt.Errorf("%w: failed to fetch medal chances", ErrDependencyUnavailable)
		}
		return nil, fmt.Errorf("fetch medal chances: %w", err)
	}
	return items, nil
}

func (s *ScheduleService) loadSchedule(ctx context.Context, static schedule.CountrySchedule) ScheduleResult {
	now := s.now()

	feed, err := s.chances.FetchFeed(ctx, static.NOC)
	if err != nil && !chances.IsTransient(err) {
		// The feed answered with something unusable, not a plain outage.
		// Prefer the last good snapshot over a freshly degraded list.
		s.logger.WarnContext(ctx, "chances feed unusable", "noc", static.NOC, "error", err)
		if cached, ok := s.loadSnapshot(ctx, static.NOC, now); ok {
			return cached
		}
		return s.fallbackResult(static, now, errScheduleFallback)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "chances feed unavailable", "noc", static.NOC, "error", err)
		feed = chances.Feed{}
	}

	byDiscipline := chancesByDiscipline(feed.Athletes)
	events := synthesizeEvents(feed, byDiscipline, now)
	if len(events) == 0 {
		events = buildEvents(static, byDiscipline, now)
	}
	if len(events) == 0 {
		return s.fallbackResult(static, now, errScheduleEmpty)
	}

	result := ScheduleResult{
		NOC:         static.NOC,
		CountryName: static.Name,
		Events:      events,
		LastUpdated: now.UTC(),
	}
	s.saveSnapshot(ctx, static.NOC, result)
	return result
}

// chancesByDiscipline keeps the strongest label per discipline when the feed
// lists several athletes for the same one.
func chancesByDiscipline(items []chances.AthleteChance) map[string]schedule.Chance {
	byDiscipline := make(map[string]schedule.Chance, len(items))
	for _, item := range items {
		mapped, ok := schedule.ChanceForLabel(item.Chance)
		if !ok {
			continue
		}
		if current, exists := byDiscipline[item.DisciplineID]; !exists || mapped.Score > current.Score {
			byDiscipline[item.DisciplineID] = mapped
		}
	}
	return byDiscipline
}

// synthesizeEvents builds the schedule straight from the feed when it ships
// its own event list. Only disciplines the committee has athletes in become
// events; names and icons come from the feed's discipline directory. The
// date-time sort is lexicographic, which is correct for zero-padded ISO
// dates and 24h times.
func synthesizeEvents(feed chances.Feed, byDiscipline map[string]schedule.Chance, now time.Time) []schedule.Event {
	if len(feed.Events) == 0 {
		return nil
	}

	directory := make(map[string]chances.Discipline, len(feed.Disciplines))
	for _, discipline := range feed.Disciplines {
		directory[discipline.ID] = discipline
	}

	athletesByDiscipline := make(map[string][]string)
	for _, athlete := range feed.Athletes {
		name := strings.TrimSpace(athlete.FirstName + " " + athlete.LastName)
		if name == "" {
			continue
		}
		athletesByDiscipline[athlete.DisciplineID] = append(athletesByDiscipline[athlete.DisciplineID], name)
	}

	seen := make(map[string]int, len(feed.Events))
	events := make([]schedule.Event, 0, len(feed.Events))
	for _, feedEvent := range feed.Events {
		names, entered := athletesByDiscipline[feedEvent.DisciplineID]
		if !entered {
			continue
		}

		id := feedEvent.DisciplineID
		seen[id]++
		if seen[id] > 1 {
			id = fmt.Sprintf("%s-%d", id, seen[feedEvent.DisciplineID])
		}

		discipline := directory[feedEvent.DisciplineID]
		sport := discipline.Name
		if sport == "" {
			sport = feedEvent.DisciplineID
		}

		event := schedule.Event{
			ID:        id,
			Sport:     sport,
			SportIcon: discipline.Icon,
			Name:      sport,
			Date:      feedEvent.Date,
			Time:      feedEvent.Time,
			Venue:     feedEvent.Venue,
			Athletes:  names,
			Source:    schedule.SourceLive,
		}
		event.Status = schedule.ComputeStatus(event, now)
		chance := schedule.UnknownChance
		if mapped, ok := byDiscipline[feedEvent.DisciplineID]; ok {
			chance = mapped
		}
		event.MedalChance = &chance
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Date+" "+events[i].Time < events[j].Date+" "+events[j].Time
	})
	return events
}

func buildEvents(static schedule.CountrySchedule, byDiscipline map[string]schedule.Chance, now time.Time) []schedule.Event {
	events := make([]schedule.Event, 0, len(static.Events))
	for _, event := range static.Events {
		event.Source = schedule.SourceLive
		event.Status = schedule.ComputeStatus(event, now)
		chance := schedule.UnknownChance
		if mapped, ok := byDiscipline[schedule.DisciplineIDFor(event.ID)]; ok {
			chance = mapped
		}
		event.MedalChance = &chance
		events = append(events, event)
	}
	return events
}

func (s *ScheduleService) fallbackResult(static schedule.CountrySchedule, now time.Time, message string) ScheduleResult {
	events := make([]schedule.Event, 0, len(static.Events))
	for _, event := range static.Events {
		event.Source = schedule.SourceFallback
		event.Status = schedule.ComputeStatus(event, now)
		chance := schedule.UnknownChance
		event.MedalChance = &chance
		events = append(events, event)
	}
	return ScheduleResult{
		NOC:          static.NOC,
		CountryName:  static.Name,
		Events:       events,
		ErrorMessage: message,
		LastUpdated:  now.UTC(),
	}
}

func (s *ScheduleService) saveSnapshot(ctx context.Context, noc string, result ScheduleResult) {
	savedAt := s.now().UTC()
	payload, err := cache.EncodeEnvelope(result.Events, savedAt, "live")
	if err != nil {
		s.logger.WarnContext(ctx, "encode schedule snapshot failed", "noc", noc, "error", err)
		return
	}
	err = s.snapshots.Upsert(ctx, snapshot.Record{
		Key:           eventsSnapshotKey(noc),
		Payload:       payload,
		SavedAt:       savedAt,
		Source:        "live",
		SchemaVersion: cache.EnvelopeSchemaVersion,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "persist schedule snapshot failed", "noc", noc, "error", err)
	}
}

func (s *ScheduleService) loadSnapshot(ctx context.Context, noc string, now time.Time) (ScheduleResult, bool) {
	record, exists, err := s.snapshots.Get(ctx, eventsSnapshotKey(noc))
	if err != nil {
		s.logger.WarnContext(ctx, "read schedule snapshot failed", "noc", noc, "error", err)
		return ScheduleResult{}, false
	}
	if !exists {
		return ScheduleResult{}, false
	}

	var events []schedule.Event
	meta, ok := cache.DecodeEnvelope(record.Payload, &events)
	if !ok || len(events) == 0 {
		return ScheduleResult{}, false
	}

	// Statuses in the snapshot are stale by definition, recompute them.
	for i := range events {
		events[i].Status = schedule.ComputeStatus(events[i], now)
	}

	static, _ := schedule.StaticByNOC(noc)
	return ScheduleResult{
		NOC:             noc,
		CountryName:     static.Name,
		Events:          events,
		ServedFromCache: true,
		CacheSavedAt:    meta.SavedAt,
		CacheAgeSeconds: meta.AgeSeconds(now),
		ErrorMessage:    errScheduleCached,
		LastUpdated:     meta.SavedAt,
	}, true
}

// eventsSnapshotKey keeps the tracked team on the historical key so old
// snapshots stay readable after upgrades.
func eventsSnapshotKey(noc string) string {
	if noc == medals.TrackedNOC {
		return snapshot.KeyEvents
	}
	return snapshot.KeyEvents + ":" + noc
}
