package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lapolla/quiniela/internal/domain/bet"
	qb "github.com/lapolla/quiniela/internal/platform/querybuilder"
)

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

// Upsert writes the bet keyed on (user_id, match_id, type). A re-bet
// overwrites prediction, wager and timestamp and clears awarded, so the
// row goes back to unsettled.
func (r *BetRepository) Upsert(ctx context.Context, item bet.Bet) (bet.Bet, error) {
	insertModel := betInsertModel{
		UserID:     item.UserID,
		MatchID:    item.MatchID,
		Type:       string(item.Type),
		Prediction: item.Prediction,
		Wager:      item.Wager,
		PlacedAt:   item.PlacedAt,
	}
	query, args, err := qb.InsertModel("bets", insertModel, `ON CONFLICT (user_id, match_id, type)
DO UPDATE SET
    prediction = EXCLUDED.prediction,
    wager = EXCLUDED.wager,
    placed_at = EXCLUDED.placed_at,
    awarded = NULL
RETURNING id`)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("build upsert bet query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return bet.Bet{}, fmt.Errorf("upsert bet: %w", err)
	}
	item.Awarded = nil

	return item, nil
}

func (r *BetRepository) GetByKey(ctx context.Context, userID, matchID int64, betType bet.Type) (bet.Bet, bool, error) {
	query, args, err := qb.Select("*").From("bets").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
			qb.Eq("type", string(betType)),
		).
		ToSQL()
	if err != nil {
		return bet.Bet{}, false, fmt.Errorf("build get bet query: %w", err)
	}

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return bet.Bet{}, false, nil
		}
		return bet.Bet{}, false, fmt.Errorf("get bet: %w", err)
	}

	return betFromRow(row), true, nil
}

func (r *BetRepository) ListUnsettledByUser(ctx context.Context, userID int64) ([]bet.Bet, error) {
	query, args, err := qb.Select("*").From("bets").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("awarded"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unsettled user bets query: %w", err)
	}

	return r.selectBets(ctx, query, args)
}

func (r *BetRepository) ListUnsettledByMatchIDs(ctx context.Context, matchIDs []int64) ([]bet.Bet, error) {
	if len(matchIDs) == 0 {
		return []bet.Bet{}, nil
	}

	query, args, err := qb.Select("*").From("bets").
		Where(
			qb.In("match_id", int64sToAny(matchIDs)),
			qb.IsNull("awarded"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unsettled match bets query: %w", err)
	}

	return r.selectBets(ctx, query, args)
}

func (r *BetRepository) ListByUserAndMatchIDs(ctx context.Context, userID int64, matchIDs []int64) ([]bet.Bet, error) {
	if len(matchIDs) == 0 {
		return []bet.Bet{}, nil
	}

	query, args, err := qb.Select("*").From("bets").
		Where(
			qb.Eq("user_id", userID),
			qb.In("match_id", int64sToAny(matchIDs)),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select user match bets query: %w", err)
	}

	return r.selectBets(ctx, query, args)
}

func (r *BetRepository) SetAwarded(ctx context.Context, betID int64, awarded int) error {
	query, args, err := qb.Update("bets").
		Set("awarded", awarded).
		Where(qb.Eq("id", betID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set bet awarded query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set bet awarded: %w", err)
	}

	return nil
}

func (r *BetRepository) selectBets(ctx context.Context, query string, args []any) ([]bet.Bet, error) {
	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bets: %w", err)
	}

	out := make([]bet.Bet, 0, len(rows))
	for _, row := range rows {
		out = append(out, betFromRow(row))
	}

	return out, nil
}

func betFromRow(row betTableModel) bet.Bet {
	return bet.Bet{
		ID:         row.ID,
		UserID:     row.UserID,
		MatchID:    row.MatchID,
		Type:       bet.Type(row.Type),
		Prediction: row.Prediction,
		Wager:      row.Wager,
		Awarded:    nullInt64ToIntPtr(row.Awarded),
		PlacedAt:   row.PlacedAt,
	}
}
