package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/oranjelive/medaltracker/external/chances"
	"github.com/oranjelive/medaltracker/external/olympics"
	"github.com/oranjelive/medaltracker/external/webpush"
	"github.com/oranjelive/medaltracker/internal/config"
	"github.com/oranjelive/medaltracker/internal/domain/notification"
	"github.com/oranjelive/medaltracker/internal/domain/preference"
	"github.com/oranjelive/medaltracker/internal/domain/snapshot"
	cacherepo "github.com/oranjelive/medaltracker/internal/infrastructure/repository/cache"
	"github.com/oranjelive/medaltracker/internal/infrastructure/repository/memory"
	"github.com/oranjelive/medaltracker/internal/infrastructure/repository/postgres"
	"github.com/oranjelive/medaltracker/internal/interfaces/httpapi"
	basecache "github.com/oranjelive/medaltracker/internal/platform/cache"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
	"github.com/oranjelive/medaltracker/internal/platform/resilience"
	"github.com/oranjelive/medaltracker/internal/usecase"
)

// App bundles the wired HTTP server and the background refresh loop so
// main owns only lifecycle, not construction.
type App struct {
	Server         *http.Server
	Refresh        *usecase.RefreshService
	RefreshEnabled bool
	Logger         *logging.Logger

	db *sqlx.DB
}

type repositories struct {
	snapshots snapshot.Repository
	favorites preference.Repository
	markers   notification.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	olympicsClient := olympics.NewClient(olympics.ClientConfig{
		MedalsPageURL: cfg.OlympicsMedalsPageURL,
		MedalsJSONURL: cfg.OlympicsMedalsJSONURL,
		WikipediaURL:  cfg.OlympicsWikipediaURL,
		Fetcher: olympics.FetcherConfig{
			Timeout: cfg.OlympicsTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.OlympicsCircuitEnabled,
				FailureThreshold: cfg.OlympicsCircuitFailures,
				OpenTimeout:      cfg.OlympicsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.OlympicsCircuitHalfOpenMax,
			},
		},
	}, logger)

	chancesClient := chances.NewClient(chances.ClientConfig{
		BaseURL: cfg.ChancesBaseURL,
		Timeout: cfg.ChancesTimeout,
	}, logger)

	var sink notification.Sink
	if cfg.NotifyWebhookURL != "" {
		sink = webpush.NewWebhookSink(webpush.WebhookSinkConfig{
			WebhookURL: cfg.NotifyWebhookURL,
			Token:      cfg.NotifyWebhookToken,
			Timeout:    cfg.NotifyWebhookTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NotifyCircuitEnabled,
				FailureThreshold: cfg.NotifyCircuitFailures,
				OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMax,
			},
		}, logger)
	} else {
		sink = webpush.NewLogSink(logger)
	}

	medalSvc := usecase.NewMedalService(olympicsClient, repos.snapshots, basecache.NewStore(cfg.CacheTTL), logger)
	scheduleSvc := usecase.NewScheduleService(chancesClient, repos.snapshots, basecache.NewStore(cfg.CacheTTL), logger)
	preferenceSvc := usecase.NewPreferenceService(repos.favorites, logger)
	notificationSvc := usecase.NewNotificationService(repos.markers, sink, logger)

	refreshSvc, err := usecase.NewRefreshService(medalSvc, scheduleSvc, notificationSvc, logger, usecase.RefreshConfig{
		MedalsInterval: cfg.RefreshMedalsInterval,
		EventsInterval: cfg.RefreshEventsInterval,
		Workers:        cfg.RefreshWorkers,
	})
	if err != nil {
		closeDB(db, logger)
		return nil, err
	}

	handler := httpapi.NewHandler(medalSvc, scheduleSvc, preferenceSvc, notificationSvc, refreshSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		refreshSvc.Close()
		closeDB(db, logger)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:         server,
		Refresh:        refreshSvc,
		RefreshEnabled: cfg.RefreshEnabled,
		Logger:         logger,
		db:             db,
	}, nil
}

// Close tears down the background loop and the DB pool. The HTTP server is
// shut down by the caller before Close.
func (a *App) Close() {
	if a.Refresh != nil {
		a.Refresh.Close()
	}
	closeDB(a.db, a.Logger)
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	var repos repositories
	var db *sqlx.DB

	if cfg.DBEnabled {
		conn, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open database: %w", err)
		}
		db = conn
		logger.Info("using postgres repositories", "database", dbNameFromURL(cfg.DBURL))

		repos = repositories{
			snapshots: postgres.NewSnapshotRepository(db),
			favorites: postgres.NewFavoriteCountryRepository(db),
			markers:   postgres.NewNotificationMarkerRepository(db),
		}
	} else {
		logger.Info("using in-memory repositories")
		repos = repositories{
			snapshots: memory.NewSnapshotRepository(),
			favorites: memory.NewFavoriteCountryRepository(),
			markers:   memory.NewNotificationMarkerRepository(),
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos = repositories{
			snapshots: cacherepo.NewSnapshotRepository(repos.snapshots, store),
			favorites: cacherepo.NewFavoriteCountryRepository(repos.favorites, store),
			markers:   cacherepo.NewNotificationMarkerRepository(repos.markers, store),
		}
	}

	return repos, db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil && logger != nil {
		logger.Warn("close database", "error", err)
	}
}
