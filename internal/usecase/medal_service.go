package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
	"github.com/oranjelive/medaltracker/internal/platform/cache"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

const medalsOverviewCacheKey = "medals:overview"

type tallyFetcher interface {
	FetchMedalTally(ctx context.Context) medals.Tally
}

// MedalsResult is a tally plus provenance: whether it was served from the
// persisted snapshot and, if so, how stale that snapshot is.
type MedalsResult struct {
	Tally           medals.Tally
	ServedFromCache bool
	CacheSavedAt    time.Time
	CacheAgeSeconds int64
}

type MedalService struct {
	fetcher   tallyFetcher
	snapshots snapshot.Repository
	store     *cache.Store
	logger    *logging.Logger
	now       func() time.Time
}

func NewMedalService(
	fetcher tallyFetcher,
	snapshots snapshot.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *MedalService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MedalService{
		fetcher:   fetcher,
		snapshots: snapshots,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// GetMedals returns the current medal overview. Concurrent callers within
// the store TTL share one upstream round trip.
func (s *MedalService) GetMedals(ctx context.Context) (MedalsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "MedalService.GetMedals")
	defer span.End()

	v, err := s.store.GetOrLoad(ctx, medalsOverviewCacheKey, func(ctx context.Context) (any, error) {
		return s.loadMedals(ctx)
	})
	if err != nil {
		return MedalsResult{}, fmt.Errorf("load medal overview: %w", err)
	}

	result, _ := v.(MedalsResult)
	return result, nil
}

// Refresh bypasses the in-process cache, fetches a fresh tally and replaces
// the cached overview with the outcome.
func (s *MedalService) Refresh(ctx context.Context) (MedalsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "MedalService.Refresh")
	defer span.End()

	result, err := s.loadMedals(ctx)
	if err != nil {
		return MedalsResult{}, err
	}
	s.store.Set(ctx, medalsOverviewCacheKey, result)
	return result, nil
}

func (s *MedalService) loadMedals(ctx context.Context) (MedalsResult, error) {
	live := s.fetcher.FetchMedalTally(ctx)
	if live.ErrorMessage == "" {
		s.saveSnapshot(ctx, live)
		return MedalsResult{Tally: live}, nil
	}

	cached, meta, ok := s.loadSnapshot(ctx)
	if !ok {
		return MedalsResult{Tally: live}, nil
	}

	// A stale tally with the live error attached beats an empty one.
	cached.ErrorMessage = live.ErrorMessage
	return MedalsResult{
		Tally:           cached,
		ServedFromCache: true,
		CacheSavedAt:    meta.SavedAt,
		CacheAgeSeconds: meta.AgeSeconds(s.now()),
	}, nil
}

func (s *MedalService) saveSnapshot(ctx context.Context, tally medals.Tally) {
	savedAt := s.now().UTC()
	payload, err := cache.EncodeEnvelope(tally, savedAt, "live")
	if err != nil {
		s.logger.WarnContext(ctx, "encode medal snapshot failed", "error", err)
		return
	}
	err = s.snapshots.Upsert(ctx, snapshot.Record{
		Key:           snapshot.KeyMedals,
		Payload:       payload,
		SavedAt:       savedAt,
		Source:        "live",
		SchemaVersion: cache.EnvelopeSchemaVersion,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "persist medal snapshot failed", "error", err)
	}
}

func (s *MedalService) loadSnapshot(ctx context.Context) (medals.Tally, cache.EnvelopeMeta, bool) {
	record, exists, err := s.snapshots.Get(ctx, snapshot.KeyMedals)
	if err != nil {
		s.logger.WarnContext(ctx, "read medal snapshot failed", "error", err)
		return medals.Tally{}, cache.EnvelopeMeta{}, false
	}
	if !exists {
		return medals.Tally{}, cache.EnvelopeMeta{}, false
	}

	var tally medals.Tally
	meta, ok := cache.DecodeEnvelope(record.Payload, &tally)
	if !ok {
		return medals.Tally{}, cache.EnvelopeMeta{}, false
	}
	return tally, meta, true
}
