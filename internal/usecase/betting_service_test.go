package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/domain/user"
)

const testSeason = "2025-2026"

func intPtr(v int) *int { return &v }

func newBettingFixture(matches []match.Match, bets []bet.Bet, totalPoints int) (*BettingService, *stubBetRepository, *stubScoreRepository) {
	betRepo := newStubBetRepository(bets...)
	scoreRepo := newStubScoreRepository(score.Score{
		ID:          1,
		UserID:      7,
		Season:      testSeason,
		TotalPoints: totalPoints,
	})
	matchRepo := newStubMatchRepository(matches...)
	userRepo := newStubUserRepository(user.User{ID: 7, GivenName: "Marta", FamilyName: "Lopez", Active: true})

	svc := NewBettingService(betRepo, matchRepo, scoreRepo, userRepo)
	svc.now = func() time.Time { return time.Date(2025, 9, 12, 18, 0, 0, 0, time.UTC) }
	return svc, betRepo, scoreRepo
}

func TestBettingService_AvailableBalance_ExcludesFinishedUnsettled(t *testing.T) {
	t.Parallel()

	scheduled := match.Match{ID: 1, RoundID: 1, HomeTeamID: 81, AwayTeamID: 86, Status: match.StatusScheduled}
	finished := match.Match{
		ID: 2, RoundID: 1, HomeTeamID: 78, AwayTeamID: 77,
		HomeGoals: intPtr(2), AwayGoals: intPtr(0), Status: match.StatusFinished,
	}
	svc, _, _ := newBettingFixture(
		[]match.Match{scheduled, finished},
		[]bet.Bet{
			{ID: 1, UserID: 7, MatchID: 1, Type: bet.TypeOutcome, Prediction: "1", Wager: 10},
			{ID: 2, UserID: 7, MatchID: 2, Type: bet.TypeExactScore, Prediction: "2-0", Wager: 20},
		},
		100,
	)

	balance, err := svc.AvailableBalance(context.Background(), 7, testSeason)
	if err != nil {
		t.Fatalf("AvailableBalance: %v", err)
	}
	if balance.Total != 100 {
		t.Fatalf("total = %d, want 100", balance.Total)
	}
	if balance.Committed != 10 {
		t.Fatalf("committed = %d, want 10 (finished match must not reserve)", balance.Committed)
	}
	if balance.Available != 90 {
		t.Fatalf("available = %d, want 90", balance.Available)
	}
}

func TestBettingService_AvailableBalance_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBettingFixture(nil, nil, 100)

	_, err := svc.AvailableBalance(context.Background(), 99, testSeason)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBettingService_PlaceBet_InsufficientBalance(t *testing.T) {
	t.Parallel()

	scheduled := match.Match{ID: 1, RoundID: 1, HomeTeamID: 81, AwayTeamID: 86, Status: match.StatusScheduled}
	svc, _, _ := newBettingFixture([]match.Match{scheduled}, nil, 15)

	_, err := svc.PlaceBet(context.Background(), PlaceBetInput{
		UserID: 7, MatchID: 1, Season: testSeason,
		Type: bet.TypeOutcome, Prediction: "X", Wager: 20,
	})

	var insufficient bet.InsufficientBalanceError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientBalanceError", err)
	}
	if insufficient.Available != 15 {
		t.Fatalf("available in error = %d, want 15", insufficient.Available)
	}
}

func TestBettingService_PlaceBet_RebetOverwritesAndResetsAward(t *testing.T) {
	t.Parallel()

	scheduled := match.Match{ID: 1, RoundID: 1, HomeTeamID: 81, AwayTeamID: 86, Status: match.StatusScheduled}
	existing := bet.Bet{
		ID: 4, UserID: 7, MatchID: 1,
		Type: bet.TypeOutcome, Prediction: "1", Wager: 5,
		Awarded: intPtr(10),
	}
	svc, betRepo, _ := newBettingFixture([]match.Match{scheduled}, []bet.Bet{existing}, 100)

	placed, err := svc.PlaceBet(context.Background(), PlaceBetInput{
		UserID: 7, MatchID: 1, Season: testSeason,
		Type: bet.TypeOutcome, Prediction: "2", Wager: 15,
	})
	if err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}

	if placed.ID != existing.ID {
		t.Fatalf("placed.ID = %d, want existing row %d reused", placed.ID, existing.ID)
	}
	if len(betRepo.bets) != 1 {
		t.Fatalf("stored bets = %d, want 1 (re-bet must overwrite)", len(betRepo.bets))
	}
	stored := betRepo.bets[existing.ID]
	if stored.Prediction != "2" || stored.Wager != 15 {
		t.Fatalf("stored bet = %+v, want prediction 2 wager 15", stored)
	}
	if stored.Awarded != nil {
		t.Fatalf("awarded = %v, want nil after overwrite", *stored.Awarded)
	}
}

func TestBettingService_PlaceBet_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	scheduled := match.Match{ID: 1, RoundID: 1, HomeTeamID: 81, AwayTeamID: 86, Status: match.StatusScheduled}

	tests := []struct {
		name  string
		input PlaceBetInput
	}{
		{
			name: "wager outside allowed steps",
			input: PlaceBetInput{
				UserID: 7, MatchID: 1, Season: testSeason,
				Type: bet.TypeOutcome, Prediction: "1", Wager: 12,
			},
		},
		{
			name: "prediction not matching type",
			input: PlaceBetInput{
				UserID: 7, MatchID: 1, Season: testSeason,
				Type: bet.TypeExactScore, Prediction: "lots", Wager: 10,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, _ := newBettingFixture([]match.Match{scheduled}, nil, 100)
			_, err := svc.PlaceBet(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBettingService_PlaceBet_UnknownMatch(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBettingFixture(nil, nil, 100)

	_, err := svc.PlaceBet(context.Background(), PlaceBetInput{
		UserID: 7, MatchID: 42, Season: testSeason,
		Type: bet.TypeOutcome, Prediction: "1", Wager: 10,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBettingService_PotentialPayout(t *testing.T) {
	t.Parallel()

	svc, _, _ := newBettingFixture(nil, nil, 100)

	tests := []struct {
		betType bet.Type
		wager   int
		want    int
	}{
		{bet.TypeOutcome, 10, 20},
		{bet.TypeExactScore, 10, 30},
		{bet.TypeTotalGoals, 10, 15},
		{bet.TypeTotalGoals, 20, 25},
	}

	for _, tc := range tests {
		got, err := svc.PotentialPayout(tc.betType, tc.wager)
		if err != nil {
			t.Fatalf("PotentialPayout(%s, %d): %v", tc.betType, tc.wager, err)
		}
		if got != tc.want {
			t.Fatalf("PotentialPayout(%s, %d) = %d, want %d", tc.betType, tc.wager, got, tc.want)
		}
	}

	if _, err := svc.PotentialPayout(bet.TypeOutcome, 7); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput for off-step wager", err)
	}
}

func TestBettingService_ListUserRoundBets_Statuses(t *testing.T) {
	t.Parallel()

	scheduled := match.Match{ID: 1, RoundID: 3, HomeTeamID: 81, AwayTeamID: 86, Status: match.StatusScheduled}
	finished := match.Match{
		ID: 2, RoundID: 3, HomeTeamID: 78, AwayTeamID: 77,
		HomeGoals: intPtr(1), AwayGoals: intPtr(1), Status: match.StatusFinished,
	}
	svc, _, _ := newBettingFixture(
		[]match.Match{scheduled, finished},
		[]bet.Bet{
			{ID: 1, UserID: 7, MatchID: 1, Type: bet.TypeOutcome, Prediction: "1", Wager: 10},
			{ID: 2, UserID: 7, MatchID: 2, Type: bet.TypeOutcome, Prediction: "X", Wager: 10, Awarded: intPtr(20)},
			{ID: 3, UserID: 7, MatchID: 2, Type: bet.TypeExactScore, Prediction: "2-0", Wager: 10, Awarded: intPtr(0)},
		},
		100,
	)

	views, err := svc.ListUserRoundBets(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("ListUserRoundBets: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("views = %d, want 3", len(views))
	}

	wantStatus := map[int64]BetStatus{1: BetStatusPending, 2: BetStatusWon, 3: BetStatusLost}
	for _, view := range views {
		if view.Status != wantStatus[view.Bet.ID] {
			t.Fatalf("bet %d status = %s, want %s", view.Bet.ID, view.Status, wantStatus[view.Bet.ID])
		}
	}
	if views[0].PotentialPayout != 20 {
		t.Fatalf("potential payout = %d, want 20", views[0].PotentialPayout)
	}
}
