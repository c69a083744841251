package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/domain/user"
)

type BettingService struct {
	betRepo   bet.Repository
	matchRepo match.Repository
	scoreRepo score.Repository
	userRepo  user.Repository
	now       func() time.Time
}

// Balance breaks a user's season points into spendable and reserved.
type Balance struct {
	UserID    int64
	Season    string
	Total     int
	Committed int
	Available int
}

// PlaceBetInput is the draft bet the UI assembles step by step and
// submits in one request.
type PlaceBetInput struct {
	UserID     int64
	MatchID    int64
	Season     string
	Type       bet.Type
	Prediction string
	Wager      int
}

// BetStatus is the display state of one of the user's bets.
type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
)

// UserBetView is one bet paired with its match and evaluation state.
type UserBetView struct {
	Bet             bet.Bet
	Match           match.Match
	Status          BetStatus
	PotentialPayout int
}

func NewBettingService(
	betRepo bet.Repository,
	matchRepo match.Repository,
	scoreRepo score.Repository,
	userRepo user.Repository,
) *BettingService {
	return &BettingService{
		betRepo:   betRepo,
		matchRepo: matchRepo,
		scoreRepo: scoreRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// AvailableBalance computes total minus committed points. Committed is
// the sum of wagers of unsettled bets whose match has not finished; a
// bet on a finished-but-unsettled match no longer reserves its wager.
func (s *BettingService) AvailableBalance(ctx context.Context, userID int64, season string) (Balance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BettingService.AvailableBalance")
	defer span.End()

	if strings.TrimSpace(season) == "" {
		return Balance{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if _, found, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return Balance{}, fmt.Errorf("get user %d: %w", userID, err)
	} else if !found {
		return Balance{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	row, err := s.scoreRepo.GetOrCreate(ctx, userID, season)
	if err != nil {
		return Balance{}, fmt.Errorf("get or create score for user %d: %w", userID, err)
	}

	committed, err := s.committedPoints(ctx, userID)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		UserID:    userID,
		Season:    season,
		Total:     row.TotalPoints,
		Committed: committed,
		Available: row.TotalPoints - committed,
	}, nil
}

func (s *BettingService) committedPoints(ctx context.Context, userID int64) (int, error) {
	open, err := s.betRepo.ListUnsettledByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("list unsettled bets for user %d: %w", userID, err)
	}

	committed := 0
	for _, item := range open {
		m, found, err := s.matchRepo.GetByID(ctx, item.MatchID)
		if err != nil {
			return 0, fmt.Errorf("get match %d: %w", item.MatchID, err)
		}
		if found && m.IsFinished() {
			continue
		}
		committed += item.Wager
	}

	return committed, nil
}

// PlaceBet validates the draft, checks the balance and upserts the bet
// by (user, match, type). The balance check and the write are not one
// transaction; the store's uniqueness constraint keeps re-bets from
// duplicating rows.
func (s *BettingService) PlaceBet(ctx context.Context, input PlaceBetInput) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BettingService.PlaceBet")
	defer span.End()

	if !bet.IsAllowedWager(input.Wager) {
		return bet.Bet{}, fmt.Errorf("%w: wager %d is not one of the allowed amounts %v", ErrInvalidInput, input.Wager, bet.AllowedWagers)
	}
	if err := bet.ValidatePrediction(input.Type, input.Prediction); err != nil {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return bet.Bet{}, fmt.Errorf("get match %d: %w", input.MatchID, err)
	} else if !found {
		return bet.Bet{}, fmt.Errorf("%w: match %d", ErrNotFound, input.MatchID)
	}

	balance, err := s.AvailableBalance(ctx, input.UserID, input.Season)
	if err != nil {
		return bet.Bet{}, err
	}

	if input.Wager > balance.Available {
		return bet.Bet{}, bet.InsufficientBalanceError{Available: balance.Available}
	}

	placed, err := s.betRepo.Upsert(ctx, bet.Bet{
		UserID:     input.UserID,
		MatchID:    input.MatchID,
		Type:       input.Type,
		Prediction: input.Prediction,
		Wager:      input.Wager,
		PlacedAt:   s.now().UTC(),
	})
	if err != nil {
		return bet.Bet{}, fmt.Errorf("upsert bet: %w", err)
	}

	return placed, nil
}

// PotentialPayout previews the gross points a correct bet would earn,
// with the exact arithmetic settlement uses.
func (s *BettingService) PotentialPayout(betType bet.Type, wager int) (int, error) {
	if !bet.IsAllowedWager(wager) {
		return 0, fmt.Errorf("%w: wager %d is not one of the allowed amounts %v", ErrInvalidInput, wager, bet.AllowedWagers)
	}
	rule, ok := bet.RuleFor(betType)
	if !ok {
		return 0, fmt.Errorf("%w: unknown bet type %q", ErrInvalidInput, betType)
	}

	return rule.Payout(wager), nil
}

// ListUserRoundBets returns the user's bets on a round's matches with
// their display state.
func (s *BettingService) ListUserRoundBets(ctx context.Context, userID, roundID int64) ([]UserBetView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BettingService.ListUserRoundBets")
	defer span.End()

	matches, err := s.matchRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list matches for round %d: %w", roundID, err)
	}
	if len(matches) == 0 {
		return []UserBetView{}, nil
	}

	matchIDs := make([]int64, 0, len(matches))
	matchesByID := make(map[int64]match.Match, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
		matchesByID[m.ID] = m
	}

	bets, err := s.betRepo.ListByUserAndMatchIDs(ctx, userID, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list bets for user %d round %d: %w", userID, roundID, err)
	}

	out := make([]UserBetView, 0, len(bets))
	for _, item := range bets {
		m := matchesByID[item.MatchID]
		rule, _ := bet.RuleFor(item.Type)

		status := BetStatusPending
		if item.Settled() {
			if *item.Awarded > 0 {
				status = BetStatusWon
			} else {
				status = BetStatusLost
			}
		}

		out = append(out, UserBetView{
			Bet:             item,
			Match:           m,
			Status:          status,
			PotentialPayout: rule.Payout(item.Wager),
		})
	}

	return out, nil
}
