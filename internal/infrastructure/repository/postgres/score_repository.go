package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lapolla/quiniela/internal/domain/score"
	qb "github.com/lapolla/quiniela/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// GetOrCreate relies on the (user_id, season) unique constraint: the
// initial-stake insert is a no-op when the row already exists.
func (r *ScoreRepository) GetOrCreate(ctx context.Context, userID int64, season string) (score.Score, error) {
	fresh := score.NewForSeason(userID, season)
	insertModel := scoreInsertModel{
		UserID:      fresh.UserID,
		Season:      fresh.Season,
		TotalPoints: fresh.TotalPoints,
		Hits:        fresh.Hits,
		Misses:      fresh.Misses,
		BetsSettled: fresh.BetsSettled,
	}
	insertQuery, insertArgs, err := qb.InsertModel("scores", insertModel, "ON CONFLICT (user_id, season) DO NOTHING")
	if err != nil {
		return score.Score{}, fmt.Errorf("build insert score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return score.Score{}, fmt.Errorf("insert score: %w", err)
	}

	query, args, err := qb.Select("*").From("scores").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return score.Score{}, fmt.Errorf("build get score query: %w", err)
	}

	var row scoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return score.Score{}, fmt.Errorf("get score: %w", err)
	}

	return scoreFromRow(row), nil
}

func (r *ScoreRepository) ListBySeason(ctx context.Context, season string) ([]score.Score, error) {
	query, args, err := qb.Select("*").From("scores").
		Where(qb.Eq("season", season)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scores query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scores: %w", err)
	}

	out := make([]score.Score, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoreFromRow(row))
	}

	return out, nil
}

func (r *ScoreRepository) ApplySettlement(ctx context.Context, scoreID int64, update score.SettlementUpdate) error {
	hitInc, missInc := 0, 1
	if update.Hit {
		hitInc, missInc = 1, 0
	}

	query, args, err := qb.Update("scores").
		SetExpr("total_points", "total_points + ?", update.Delta).
		SetExpr("hits", "hits + ?", hitInc).
		SetExpr("misses", "misses + ?", missInc).
		SetExpr("bets_settled", "bets_settled + 1").
		Where(qb.Eq("id", scoreID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build apply settlement query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("apply settlement: %w", err)
	}

	return nil
}

func scoreFromRow(row scoreTableModel) score.Score {
	return score.Score{
		ID:          row.ID,
		UserID:      row.UserID,
		Season:      row.Season,
		TotalPoints: row.TotalPoints,
		Hits:        row.Hits,
		Misses:      row.Misses,
		BetsSettled: row.BetsSettled,
	}
}
