package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/domain/team"
	"github.com/lapolla/quiniela/internal/domain/user"
)

type stubTeamRepository struct {
	teams map[int64]team.Team
}

func newStubTeamRepository(teams ...team.Team) *stubTeamRepository {
	repo := &stubTeamRepository{teams: make(map[int64]team.Team)}
	for _, item := range teams {
		repo.teams[item.ID] = item
	}
	return repo
}

func (r *stubTeamRepository) List(context.Context) ([]team.Team, error) {
	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *stubTeamRepository) ReplaceAll(_ context.Context, teams []team.Team) error {
	r.teams = make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		r.teams[item.ID] = item
	}
	return nil
}

type stubUserRepository struct {
	users  map[int64]user.User
	nextID int64
}

func newStubUserRepository(users ...user.User) *stubUserRepository {
	repo := &stubUserRepository{users: make(map[int64]user.User), nextID: 1}
	for _, item := range users {
		repo.users[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *stubUserRepository) ListActive(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, item := range r.users {
		if item.Active {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	item, ok := r.users[userID]
	return item, ok, nil
}

func (r *stubUserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	item.ID = r.nextID
	r.nextID++
	r.users[item.ID] = item
	return item, nil
}

type stubRoundRepository struct {
	rounds map[int64]round.Round
	nextID int64
}

func newStubRoundRepository(rounds ...round.Round) *stubRoundRepository {
	repo := &stubRoundRepository{rounds: make(map[int64]round.Round), nextID: 1}
	for _, item := range rounds {
		repo.rounds[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *stubRoundRepository) ListBySeason(_ context.Context, season string) ([]round.Round, error) {
	out := make([]round.Round, 0, len(r.rounds))
	for _, item := range r.rounds {
		if item.Season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *stubRoundRepository) GetByID(_ context.Context, roundID int64) (round.Round, bool, error) {
	item, ok := r.rounds[roundID]
	return item, ok, nil
}

func (r *stubRoundRepository) GetByNumber(_ context.Context, number int, season string) (round.Round, bool, error) {
	for _, item := range r.rounds {
		if item.Number == number && item.Season == season {
			return item, true, nil
		}
	}
	return round.Round{}, false, nil
}

func (r *stubRoundRepository) Create(_ context.Context, item round.Round) (round.Round, error) {
	item.ID = r.nextID
	r.nextID++
	r.rounds[item.ID] = item
	return item, nil
}

type stubMatchRepository struct {
	matches map[int64]match.Match
	nextID  int64
}

func newStubMatchRepository(matches ...match.Match) *stubMatchRepository {
	repo := &stubMatchRepository{matches: make(map[int64]match.Match), nextID: 1}
	for _, item := range matches {
		repo.matches[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *stubMatchRepository) ListByRound(_ context.Context, roundID int64) ([]match.Match, error) {
	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if item.RoundID == roundID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *stubMatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	if item.ID <= 0 {
		item.ID = r.nextID
	}
	if item.ID >= r.nextID {
		r.nextID = item.ID + 1
	}
	r.matches[item.ID] = item
	return item, nil
}

func (r *stubMatchRepository) SetResult(_ context.Context, matchID int64, homeGoals, awayGoals int) error {
	item := r.matches[matchID]
	item.HomeGoals = &homeGoals
	item.AwayGoals = &awayGoals
	item.Status = match.StatusFinished
	r.matches[matchID] = item
	return nil
}

func (r *stubMatchRepository) CountByRound(_ context.Context, roundID int64) (int, error) {
	count := 0
	for _, item := range r.matches {
		if item.RoundID == roundID {
			count++
		}
	}
	return count, nil
}

type stubBetRepository struct {
	bets   map[int64]bet.Bet
	nextID int64
}

func newStubBetRepository(bets ...bet.Bet) *stubBetRepository {
	repo := &stubBetRepository{bets: make(map[int64]bet.Bet), nextID: 1}
	for _, item := range bets {
		repo.bets[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *stubBetRepository) Upsert(_ context.Context, item bet.Bet) (bet.Bet, error) {
	for id, existing := range r.bets {
		if existing.UserID == item.UserID && existing.MatchID == item.MatchID && existing.Type == item.Type {
			item.ID = id
			item.Awarded = nil
			r.bets[id] = item
			return item, nil
		}
	}
	item.ID = r.nextID
	r.nextID++
	item.Awarded = nil
	r.bets[item.ID] = item
	return item, nil
}

func (r *stubBetRepository) GetByKey(_ context.Context, userID, matchID int64, betType bet.Type) (bet.Bet, bool, error) {
	for _, item := range r.bets {
		if item.UserID == userID && item.MatchID == matchID && item.Type == betType {
			return item, true, nil
		}
	}
	return bet.Bet{}, false, nil
}

func (r *stubBetRepository) ListUnsettledByUser(_ context.Context, userID int64) ([]bet.Bet, error) {
	out := make([]bet.Bet, 0)
	for _, item := range r.bets {
		if item.UserID == userID && !item.Settled() {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBetRepository) ListUnsettledByMatchIDs(_ context.Context, matchIDs []int64) ([]bet.Bet, error) {
	wanted := make(map[int64]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = struct{}{}
	}
	out := make([]bet.Bet, 0)
	for _, item := range r.bets {
		if _, ok := wanted[item.MatchID]; ok && !item.Settled() {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBetRepository) ListByUserAndMatchIDs(_ context.Context, userID int64, matchIDs []int64) ([]bet.Bet, error) {
	wanted := make(map[int64]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = struct{}{}
	}
	out := make([]bet.Bet, 0)
	for _, item := range r.bets {
		if _, ok := wanted[item.MatchID]; ok && item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBetRepository) SetAwarded(_ context.Context, betID int64, awarded int) error {
	item := r.bets[betID]
	item.Awarded = &awarded
	r.bets[betID] = item
	return nil
}

type stubScoreRepository struct {
	rows   map[int64]score.Score
	nextID int64
}

func newStubScoreRepository(rows ...score.Score) *stubScoreRepository {
	repo := &stubScoreRepository{rows: make(map[int64]score.Score), nextID: 1}
	for _, item := range rows {
		repo.rows[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *stubScoreRepository) GetOrCreate(_ context.Context, userID int64, season string) (score.Score, error) {
	for _, item := range r.rows {
		if item.UserID == userID && item.Season == season {
			return item, nil
		}
	}
	item := score.NewForSeason(userID, season)
	item.ID = r.nextID
	r.nextID++
	r.rows[item.ID] = item
	return item, nil
}

func (r *stubScoreRepository) ListBySeason(_ context.Context, season string) ([]score.Score, error) {
	out := make([]score.Score, 0)
	for _, item := range r.rows {
		if item.Season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubScoreRepository) ApplySettlement(_ context.Context, scoreID int64, update score.SettlementUpdate) error {
	item := r.rows[scoreID]
	item.TotalPoints += update.Delta
	item.BetsSettled++
	if update.Hit {
		item.Hits++
	} else {
		item.Misses++
	}
	r.rows[scoreID] = item
	return nil
}

type stubLeagueFeed struct {
	mu            sync.Mutex
	teams         []ExternalTeam
	matchesByTeam map[int64][]ExternalMatch
	errsByTeam    map[int64]error
	teamsErr      error
	fetchedTeams  []int64
}

func (f *stubLeagueFeed) FetchCompetitionTeams(context.Context) ([]ExternalTeam, error) {
	if f.teamsErr != nil {
		return nil, f.teamsErr
	}
	return f.teams, nil
}

func (f *stubLeagueFeed) FetchTeamScheduledMatches(_ context.Context, teamID int64) ([]ExternalMatch, error) {
	f.mu.Lock()
	f.fetchedTeams = append(f.fetchedTeams, teamID)
	f.mu.Unlock()

	if err := f.errsByTeam[teamID]; err != nil {
		return nil, err
	}
	return f.matchesByTeam[teamID], nil
}
