// Package app assembles the betting pool service: storage, the league
// feed client, the use-case services and the HTTP surface.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lapolla/quiniela/external/footballdata"
	"github.com/lapolla/quiniela/internal/config"
	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/domain/team"
	"github.com/lapolla/quiniela/internal/domain/user"
	"github.com/lapolla/quiniela/internal/infrastructure/repository/memory"
	"github.com/lapolla/quiniela/internal/infrastructure/repository/postgres"
	"github.com/lapolla/quiniela/internal/interfaces/httpapi"
	"github.com/lapolla/quiniela/internal/platform/cache"
	"github.com/lapolla/quiniela/internal/platform/logging"
	"github.com/lapolla/quiniela/internal/platform/resilience"
	"github.com/lapolla/quiniela/internal/usecase"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

type repositories struct {
	team  team.Repository
	user  user.Repository
	round round.Repository
	match match.Repository
	bet   bet.Repository
	score score.Repository
}

// NewHTTPServer wires repositories, services and the router into a
// ready-to-run server. The returned cleanup releases storage handles
// and must be called on shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	store := cache.NewStore(cfg.CacheTTL)
	teamService := usecase.NewTeamService(repos.team, store)
	userService := usecase.NewUserService(repos.user)
	roundService := usecase.NewRoundService(repos.round, repos.match, repos.team)
	bettingService := usecase.NewBettingService(repos.bet, repos.match, repos.score, repos.user)
	settlementService := usecase.NewSettlementService(repos.round, repos.match, repos.bet, repos.score, logger)
	standingService := usecase.NewStandingService(repos.score, repos.user)
	importService := usecase.NewImportService(
		buildLeagueFeed(cfg, logger),
		teamService,
		repos.team,
		repos.round,
		repos.match,
		usecase.ImportServiceConfig{
			Competition:  cfg.FeedCompetition,
			MaxWorkers:   cfg.ImportMaxWorkers,
			RateInterval: cfg.ImportRateInterval,
		},
		logger,
	)

	handler := httpapi.NewHandler(
		teamService,
		userService,
		roundService,
		bettingService,
		settlementService,
		standingService,
		importService,
		cfg.Season,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = cleanup(context.Background())
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("postgres storage ready", "database", dbNameFromURL(cfg.DBURL))
		return repositories{
				team:  postgres.NewTeamRepository(db),
				user:  postgres.NewUserRepository(db),
				round: postgres.NewRoundRepository(db),
				match: postgres.NewMatchRepository(db),
				bet:   postgres.NewBetRepository(db),
				score: postgres.NewScoreRepository(db),
			}, func(context.Context) error {
				return db.Close()
			}, nil
	case config.StorageMemory:
		logger.Info("in-memory storage ready", "season", memory.SeedSeason)
		return repositories{
			team:  memory.NewTeamRepository(memory.SeedTeams()),
			user:  memory.NewUserRepository(memory.SeedUsers()),
			round: memory.NewRoundRepository(memory.SeedRounds()),
			match: memory.NewMatchRepository(nil),
			bet:   memory.NewBetRepository(),
			score: memory.NewScoreRepository(),
		}, noop, nil
	default:
		return repositories{}, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

func buildLeagueFeed(cfg config.Config, logger *logging.Logger) usecase.LeagueFeed {
	if !cfg.FeedEnabled {
		return nil
	}

	return footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:     cfg.FeedBaseURL,
		Token:       cfg.FeedToken,
		Competition: cfg.FeedCompetition,
		Timeout:     cfg.FeedTimeout,
		MaxRetries:  cfg.FeedMaxRetries,
		Logger:      logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailureCount,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
		},
	})
}
