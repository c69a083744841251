package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/score"
)

func TestSettlementService_SettleRound(t *testing.T) {
	t.Parallel()

	roundRepo := newStubRoundRepository(round.Round{ID: 3, Number: 3, Season: testSeason})
	matchRepo := newStubMatchRepository(
		match.Match{
			ID: 1, RoundID: 3, HomeTeamID: 81, AwayTeamID: 86,
			HomeGoals: intPtr(2), AwayGoals: intPtr(1), Status: match.StatusFinished,
		},
		match.Match{
			ID: 2, RoundID: 3, HomeTeamID: 78, AwayTeamID: 77,
			HomeGoals: intPtr(0), AwayGoals: intPtr(0), Status: match.StatusFinished,
		},
		match.Match{ID: 3, RoundID: 3, HomeTeamID: 90, AwayTeamID: 94, Status: match.StatusScheduled},
	)
	betRepo := newStubBetRepository(
		// Correct outcome, wager 10: awarded 20, delta +10.
		bet.Bet{ID: 1, UserID: 7, MatchID: 1, Type: bet.TypeOutcome, Prediction: "1", Wager: 10},
		// Wrong exact score, wager 20: delta -20.
		bet.Bet{ID: 2, UserID: 7, MatchID: 2, Type: bet.TypeExactScore, Prediction: "1-0", Wager: 20},
		// Match not finished: stays open.
		bet.Bet{ID: 3, UserID: 7, MatchID: 3, Type: bet.TypeOutcome, Prediction: "2", Wager: 5},
		// Already settled: must not be counted twice.
		bet.Bet{ID: 4, UserID: 8, MatchID: 1, Type: bet.TypeOutcome, Prediction: "1", Wager: 10, Awarded: intPtr(20)},
	)
	scoreRepo := newStubScoreRepository(score.Score{ID: 1, UserID: 7, Season: testSeason, TotalPoints: 100})

	svc := NewSettlementService(roundRepo, matchRepo, betRepo, scoreRepo, nil)

	summary, err := svc.SettleRound(context.Background(), 3, testSeason)
	if err != nil {
		t.Fatalf("SettleRound: %v", err)
	}

	if summary.BetsSettled != 2 {
		t.Fatalf("bets settled = %d, want 2", summary.BetsSettled)
	}
	if summary.PointsAwarded != 10 {
		t.Fatalf("points awarded = %d, want 10", summary.PointsAwarded)
	}
	if summary.PointsLost != 20 {
		t.Fatalf("points lost = %d, want 20", summary.PointsLost)
	}

	row, err := scoreRepo.GetOrCreate(context.Background(), 7, testSeason)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if row.TotalPoints != 90 {
		t.Fatalf("total points = %d, want 90", row.TotalPoints)
	}
	if row.Hits != 1 || row.Misses != 1 || row.BetsSettled != 2 {
		t.Fatalf("counters = %d/%d/%d, want 1 hit, 1 miss, 2 settled", row.Hits, row.Misses, row.BetsSettled)
	}

	won := betRepo.bets[1]
	if won.Awarded == nil || *won.Awarded != 20 {
		t.Fatalf("winning bet awarded = %v, want 20", won.Awarded)
	}
	lost := betRepo.bets[2]
	if lost.Awarded == nil || *lost.Awarded != 0 {
		t.Fatalf("losing bet awarded = %v, want 0", lost.Awarded)
	}
	open := betRepo.bets[3]
	if open.Awarded != nil {
		t.Fatalf("bet on unfinished match awarded = %v, want nil", *open.Awarded)
	}
}

func TestSettlementService_SettleRound_Idempotent(t *testing.T) {
	t.Parallel()

	roundRepo := newStubRoundRepository(round.Round{ID: 1, Number: 1, Season: testSeason})
	matchRepo := newStubMatchRepository(match.Match{
		ID: 1, RoundID: 1, HomeTeamID: 81, AwayTeamID: 86,
		HomeGoals: intPtr(3), AwayGoals: intPtr(1), Status: match.StatusFinished,
	})
	betRepo := newStubBetRepository(
		bet.Bet{ID: 1, UserID: 7, MatchID: 1, Type: bet.TypeTotalGoals, Prediction: bet.PredictionHigh, Wager: 15},
	)
	scoreRepo := newStubScoreRepository()

	svc := NewSettlementService(roundRepo, matchRepo, betRepo, scoreRepo, nil)

	first, err := svc.SettleRound(context.Background(), 1, testSeason)
	if err != nil {
		t.Fatalf("first SettleRound: %v", err)
	}
	if first.BetsSettled != 1 || first.PointsAwarded != 5 {
		t.Fatalf("first summary = %+v, want 1 settled, 5 awarded", first)
	}

	second, err := svc.SettleRound(context.Background(), 1, testSeason)
	if err != nil {
		t.Fatalf("second SettleRound: %v", err)
	}
	if second.BetsSettled != 0 || second.PointsAwarded != 0 || second.PointsLost != 0 {
		t.Fatalf("second summary = %+v, want all zero", second)
	}

	row, err := scoreRepo.GetOrCreate(context.Background(), 7, testSeason)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if row.TotalPoints != score.InitialStake+5 {
		t.Fatalf("total points = %d, want %d", row.TotalPoints, score.InitialStake+5)
	}
}

func TestSettlementService_SettleRound_NoFinishedMatches(t *testing.T) {
	t.Parallel()

	roundRepo := newStubRoundRepository(round.Round{ID: 1, Number: 1, Season: testSeason})
	matchRepo := newStubMatchRepository(
		match.Match{ID: 1, RoundID: 1, HomeTeamID: 81, AwayTeamID: 86, Status: match.StatusScheduled},
	)
	svc := NewSettlementService(roundRepo, matchRepo, newStubBetRepository(), newStubScoreRepository(), nil)

	summary, err := svc.SettleRound(context.Background(), 1, testSeason)
	if err != nil {
		t.Fatalf("SettleRound: %v", err)
	}
	if summary.BetsSettled != 0 {
		t.Fatalf("bets settled = %d, want 0", summary.BetsSettled)
	}
}

func TestSettlementService_SettleRound_Validation(t *testing.T) {
	t.Parallel()

	svc := NewSettlementService(newStubRoundRepository(), newStubMatchRepository(), newStubBetRepository(), newStubScoreRepository(), nil)

	if _, err := svc.SettleRound(context.Background(), 1, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput for blank season", err)
	}
	if _, err := svc.SettleRound(context.Background(), 42, testSeason); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for unknown round", err)
	}
}
