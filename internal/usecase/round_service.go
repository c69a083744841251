package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/team"
)

type RoundService struct {
	roundRepo round.Repository
	matchRepo match.Repository
	teamRepo  team.Repository
}

// RoundSummary is one round with its match count, for listings.
type RoundSummary struct {
	Round      round.Round
	MatchCount int
}

// MatchView is a match with both clubs embedded, plus the derived
// result fields the betting surface renders.
type MatchView struct {
	Match      match.Match
	HomeTeam   team.Team
	AwayTeam   team.Team
	Outcome    match.Outcome
	Score      string
	TotalGoals *int
}

func NewRoundService(roundRepo round.Repository, matchRepo match.Repository, teamRepo team.Repository) *RoundService {
	return &RoundService{
		roundRepo: roundRepo,
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
	}
}

func (s *RoundService) ListBySeason(ctx context.Context, season string) ([]RoundSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.ListBySeason")
	defer span.End()

	if strings.TrimSpace(season) == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	rounds, err := s.roundRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list rounds for season %s: %w", season, err)
	}

	out := make([]RoundSummary, 0, len(rounds))
	for _, item := range rounds {
		count, err := s.matchRepo.CountByRound(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("count matches for round %d: %w", item.ID, err)
		}
		out = append(out, RoundSummary{Round: item, MatchCount: count})
	}

	return out, nil
}

func (s *RoundService) GetByID(ctx context.Context, roundID int64) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.GetByID")
	defer span.End()

	item, found, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return round.Round{}, fmt.Errorf("get round %d: %w", roundID, err)
	}
	if !found {
		return round.Round{}, fmt.Errorf("%w: round %d", ErrNotFound, roundID)
	}

	return item, nil
}

func (s *RoundService) Create(ctx context.Context, number int, season string) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Create")
	defer span.End()

	item := round.Round{Number: number, Season: strings.TrimSpace(season)}
	if err := item.Validate(); err != nil {
		return round.Round{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.roundRepo.GetByNumber(ctx, number, item.Season); err != nil {
		return round.Round{}, fmt.Errorf("check round %d/%s: %w", number, item.Season, err)
	} else if exists {
		return round.Round{}, fmt.Errorf("%w: round %d already exists for season %s", ErrInvalidInput, number, item.Season)
	}

	created, err := s.roundRepo.Create(ctx, item)
	if err != nil {
		return round.Round{}, fmt.Errorf("create round: %w", err)
	}

	return created, nil
}

func (s *RoundService) ListMatches(ctx context.Context, roundID int64) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.ListMatches")
	defer span.End()

	if _, err := s.GetByID(ctx, roundID); err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list matches for round %d: %w", roundID, err)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams for round %d: %w", roundID, err)
	}
	teamsByID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		teamsByID[item.ID] = item
	}

	out := make([]MatchView, 0, len(matches))
	for _, item := range matches {
		out = append(out, MatchView{
			Match:      item,
			HomeTeam:   teamsByID[item.HomeTeamID],
			AwayTeam:   teamsByID[item.AwayTeamID],
			Outcome:    match.CategoricalOutcome(item),
			Score:      match.ExactScore(item),
			TotalGoals: match.TotalGoals(item),
		})
	}

	return out, nil
}

func (s *RoundService) CreateMatch(ctx context.Context, roundID, homeTeamID, awayTeamID int64, kickoffAt time.Time) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.CreateMatch")
	defer span.End()

	if _, err := s.GetByID(ctx, roundID); err != nil {
		return match.Match{}, err
	}

	for _, teamID := range []int64{homeTeamID, awayTeamID} {
		if _, found, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return match.Match{}, fmt.Errorf("get team %d: %w", teamID, err)
		} else if !found {
			return match.Match{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
		}
	}

	item := match.Match{
		RoundID:    roundID,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		KickoffAt:  kickoffAt,
		Status:     match.StatusScheduled,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

// SetResult records both goals and marks the match finished. Re-finishing
// overwrites the score; bets already awarded are untouched because the
// settlement filter skips them.
func (s *RoundService) SetResult(ctx context.Context, matchID int64, homeGoals, awayGoals int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.SetResult")
	defer span.End()

	if homeGoals < 0 || awayGoals < 0 {
		return match.Match{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	if _, found, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return match.Match{}, fmt.Errorf("get match %d: %w", matchID, err)
	} else if !found {
		return match.Match{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	if err := s.matchRepo.SetResult(ctx, matchID, homeGoals, awayGoals); err != nil {
		return match.Match{}, fmt.Errorf("set result for match %d: %w", matchID, err)
	}

	updated, _, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("reload match %d: %w", matchID, err)
	}

	return updated, nil
}
