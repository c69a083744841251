package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/team"
	"github.com/lapolla/quiniela/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
)

const (
	ImportSourceFeed = "feed"
	ImportSourceDemo = "demo"

	defaultImportWorkers = 2
)

type ImportService struct {
	feed         LeagueFeed
	teamService  *TeamService
	teamRepo     team.Repository
	roundRepo    RoundGetter
	matchRepo    match.Repository
	competition  string
	maxWorkers   int
	rateInterval time.Duration
	logger       *logging.Logger
}

// RoundGetter is the slice of the round repository imports need.
type RoundGetter interface {
	GetByID(ctx context.Context, roundID int64) (round.Round, bool, error)
}

// ImportResult reports a partial-success import: entities stored plus
// per-team warnings for the fetches that failed.
type ImportResult struct {
	TeamsImported   int      `json:"teams_imported"`
	MatchesImported int      `json:"matches_imported"`
	Warnings        []string `json:"warnings,omitempty"`
}

type ImportServiceConfig struct {
	Competition  string
	MaxWorkers   int
	RateInterval time.Duration
}

func NewImportService(
	feed LeagueFeed,
	teamService *TeamService,
	teamRepo team.Repository,
	roundRepo RoundGetter,
	matchRepo match.Repository,
	cfg ImportServiceConfig,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = defaultImportWorkers
	}

	return &ImportService{
		feed:         feed,
		teamService:  teamService,
		teamRepo:     teamRepo,
		roundRepo:    roundRepo,
		matchRepo:    matchRepo,
		competition:  strings.TrimSpace(cfg.Competition),
		maxWorkers:   workers,
		rateInterval: cfg.RateInterval,
		logger:       logger,
	}
}

// ImportTeams replaces the club catalogue from the feed or from the
// bundled demo data.
func (s *ImportService) ImportTeams(ctx context.Context, source string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportTeams")
	defer span.End()

	switch strings.ToLower(strings.TrimSpace(source)) {
	case ImportSourceDemo:
		catalogue := team.DemoCatalogue()
		if err := s.teamService.ReplaceAll(ctx, catalogue); err != nil {
			return ImportResult{}, err
		}
		return ImportResult{TeamsImported: len(catalogue)}, nil
	case ImportSourceFeed:
		if s.feed == nil {
			return ImportResult{}, fmt.Errorf("%w: league feed is not configured", ErrDependencyUnavailable)
		}

		external, err := s.feed.FetchCompetitionTeams(ctx)
		if err != nil {
			return ImportResult{}, fmt.Errorf("%w: fetch competition teams: %v", ErrDependencyUnavailable, err)
		}

		teams := make([]team.Team, 0, len(external))
		for _, item := range external {
			teams = append(teams, team.Team{
				ID:    item.ID,
				Name:  item.Name,
				Short: team.TruncateShort(item.Short),
				Venue: item.Venue,
			})
		}
		if err := s.teamService.ReplaceAll(ctx, teams); err != nil {
			return ImportResult{}, err
		}
		return ImportResult{TeamsImported: len(teams)}, nil
	default:
		return ImportResult{}, fmt.Errorf("%w: unknown import source %q", ErrInvalidInput, source)
	}
}

// ImportRoundMatches walks every stored club's scheduled fixtures and
// stores the competition's matches into the round, deduplicated by feed
// match id. Per-team fetch failures become warnings; everything fetched
// before a failure is kept.
func (s *ImportService) ImportRoundMatches(ctx context.Context, roundID int64) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportRoundMatches")
	defer span.End()

	result := ImportResult{}

	if s.feed == nil {
		return result, fmt.Errorf("%w: league feed is not configured", ErrDependencyUnavailable)
	}
	if _, found, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
		return result, fmt.Errorf("get round %d: %w", roundID, err)
	} else if !found {
		return result, fmt.Errorf("%w: round %d", ErrNotFound, roundID)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return result, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return result, fmt.Errorf("%w: no teams loaded, import teams first", ErrInvalidInput)
	}
	teamIDs := make(map[int64]struct{}, len(teams))
	for _, item := range teams {
		teamIDs[item.ID] = struct{}{}
	}

	fetched, warnings := s.fetchScheduledMatches(ctx, teams)
	result.Warnings = warnings

	existing, err := s.matchRepo.ListByRound(ctx, roundID)
	if err != nil {
		return result, fmt.Errorf("list matches for round %d: %w", roundID, err)
	}
	existingIDs := make(map[int64]struct{}, len(existing))
	for _, item := range existing {
		existingIDs[item.ID] = struct{}{}
	}

	// Deterministic insert order regardless of worker completion order.
	sort.Slice(fetched, func(i, j int) bool { return fetched[i].ID < fetched[j].ID })

	for _, item := range fetched {
		if _, dup := existingIDs[item.ID]; dup {
			continue
		}
		if _, ok := teamIDs[item.HomeTeamID]; !ok {
			continue
		}
		if _, ok := teamIDs[item.AwayTeamID]; !ok {
			continue
		}

		if _, err := s.matchRepo.Create(ctx, match.Match{
			ID:         item.ID,
			RoundID:    roundID,
			HomeTeamID: item.HomeTeamID,
			AwayTeamID: item.AwayTeamID,
			KickoffAt:  item.KickoffAt,
			Status:     match.StatusScheduled,
		}); err != nil {
			return result, fmt.Errorf("create match %d: %w", item.ID, err)
		}
		existingIDs[item.ID] = struct{}{}
		result.MatchesImported++
	}

	s.logger.InfoContext(ctx, "round matches imported",
		"round_id", roundID,
		"matches_imported", result.MatchesImported,
		"warnings", len(result.Warnings),
	)

	return result, nil
}

func (s *ImportService) fetchScheduledMatches(ctx context.Context, teams []team.Team) ([]ExternalMatch, []string) {
	var (
		mu       sync.Mutex
		byID     = make(map[int64]ExternalMatch)
		warnings []string
	)

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		// Pool construction only fails on invalid sizes; fall back to
		// a serial walk.
		pool = nil
	} else {
		defer pool.Release()
	}

	var limiter *time.Ticker
	if s.rateInterval > 0 {
		limiter = time.NewTicker(s.rateInterval)
		defer limiter.Stop()
	}

	var wg sync.WaitGroup
	for _, item := range teams {
		item := item
		task := func() {
			defer wg.Done()

			if limiter != nil {
				select {
				case <-ctx.Done():
					return
				case <-limiter.C:
				}
			}

			matches, fetchErr := s.feed.FetchTeamScheduledMatches(ctx, item.ID)
			if fetchErr != nil {
				mu.Lock()
				warnings = append(warnings, fmt.Sprintf("%s: %v", item.Short, fetchErr))
				mu.Unlock()
				return
			}

			mu.Lock()
			for _, m := range matches {
				if s.competition != "" && m.CompetitionCode != s.competition {
					continue
				}
				if m.ID <= 0 {
					continue
				}
				if _, seen := byID[m.ID]; !seen {
					byID[m.ID] = m
				}
			}
			mu.Unlock()
		}

		wg.Add(1)
		if pool != nil {
			if submitErr := pool.Submit(task); submitErr != nil {
				wg.Done()
				mu.Lock()
				warnings = append(warnings, fmt.Sprintf("%s: %v", item.Short, submitErr))
				mu.Unlock()
			}
			continue
		}
		task()
	}
	wg.Wait()

	out := make([]ExternalMatch, 0, len(byID))
	for _, m := range byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, warnings
}
