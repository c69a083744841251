package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/domain/match"
	"github.com/lapolla/quiniela/internal/domain/round"
	"github.com/lapolla/quiniela/internal/domain/score"
	"github.com/lapolla/quiniela/internal/platform/logging"
)

type SettlementService struct {
	roundRepo round.Repository
	matchRepo match.Repository
	betRepo   bet.Repository
	scoreRepo score.Repository
	logger    *logging.Logger
}

// SettlementSummary reports one settlement pass over a round.
type SettlementSummary struct {
	BetsSettled   int `json:"bets_settled"`
	PointsAwarded int `json:"points_awarded"`
	PointsLost    int `json:"points_lost"`
}

func NewSettlementService(
	roundRepo round.Repository,
	matchRepo match.Repository,
	betRepo bet.Repository,
	scoreRepo score.Repository,
	logger *logging.Logger,
) *SettlementService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SettlementService{
		roundRepo: roundRepo,
		matchRepo: matchRepo,
		betRepo:   betRepo,
		scoreRepo: scoreRepo,
		logger:    logger,
	}
}

// SettleRound scores every unsettled bet on the round's finished
// matches. Settled bets are skipped by the nil-awarded filter, so the
// pass is idempotent per bet; a failed pass is resumed by re-invoking.
// The per-bet writes are independent updates, not one transaction.
func (s *SettlementService) SettleRound(ctx context.Context, roundID int64, season string) (SettlementSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.SettleRound")
	defer span.End()

	summary := SettlementSummary{}

	if strings.TrimSpace(season) == "" {
		return summary, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if _, found, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
		return summary, fmt.Errorf("get round %d: %w", roundID, err)
	} else if !found {
		return summary, fmt.Errorf("%w: round %d", ErrNotFound, roundID)
	}

	matches, err := s.matchRepo.ListByRound(ctx, roundID)
	if err != nil {
		return summary, fmt.Errorf("list matches for round %d: %w", roundID, err)
	}

	finishedByID := make(map[int64]match.Match)
	finishedIDs := make([]int64, 0, len(matches))
	for _, m := range matches {
		if m.IsFinished() {
			finishedByID[m.ID] = m
			finishedIDs = append(finishedIDs, m.ID)
		}
	}
	if len(finishedIDs) == 0 {
		return summary, nil
	}

	open, err := s.betRepo.ListUnsettledByMatchIDs(ctx, finishedIDs)
	if err != nil {
		return summary, fmt.Errorf("list unsettled bets for round %d: %w", roundID, err)
	}

	for _, item := range open {
		m := finishedByID[item.MatchID]
		evaluation := bet.Evaluate(item, m)
		if evaluation.Pending() {
			continue
		}

		if err := s.betRepo.SetAwarded(ctx, item.ID, evaluation.Awarded); err != nil {
			return summary, fmt.Errorf("mark bet %d settled: %w", item.ID, err)
		}

		row, err := s.scoreRepo.GetOrCreate(ctx, item.UserID, season)
		if err != nil {
			return summary, fmt.Errorf("get or create score for user %d: %w", item.UserID, err)
		}
		hit := evaluation.Correct != nil && *evaluation.Correct
		if err := s.scoreRepo.ApplySettlement(ctx, row.ID, score.SettlementUpdate{
			Delta: evaluation.Delta,
			Hit:   hit,
		}); err != nil {
			return summary, fmt.Errorf("apply settlement to score %d: %w", row.ID, err)
		}

		summary.BetsSettled++
		if hit {
			summary.PointsAwarded += evaluation.Delta
		} else {
			summary.PointsLost += item.Wager
		}
	}

	s.logger.InfoContext(ctx, "round settled",
		"round_id", roundID,
		"season", season,
		"bets_settled", summary.BetsSettled,
		"points_awarded", summary.PointsAwarded,
		"points_lost", summary.PointsLost,
	)

	return summary, nil
}
