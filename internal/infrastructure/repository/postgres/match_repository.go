package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lapolla/quiniela/internal/domain/match"
	qb "github.com/lapolla/quiniela/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByRound(ctx context.Context, roundID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("round_id", roundID)).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

// Create keeps feed match ids as primary keys: an explicit positive id
// is inserted as-is, otherwise the table default assigns one.
func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	builder := qb.InsertInto("matches")
	if item.ID > 0 {
		builder.
			Columns("id", "round_id", "home_team_id", "away_team_id", "kickoff_at", "status").
			Values(item.ID, item.RoundID, item.HomeTeamID, item.AwayTeamID, item.KickoffAt, item.Status)
	} else {
		builder.
			Columns("round_id", "home_team_id", "away_team_id", "kickoff_at", "status").
			Values(item.RoundID, item.HomeTeamID, item.AwayTeamID, item.KickoffAt, item.Status)
	}

	query, args, err := builder.Suffix("RETURNING id").ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return item, nil
}

func (r *MatchRepository) SetResult(ctx context.Context, matchID int64, homeGoals, awayGoals int) error {
	query, args, err := qb.Update("matches").
		Set("home_goals", homeGoals).
		Set("away_goals", awayGoals).
		Set("status", match.StatusFinished).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set match result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set match result: %w", err)
	}

	return nil
}

func (r *MatchRepository) CountByRound(ctx context.Context, roundID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(qb.Eq("round_id", roundID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}

	return count, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		RoundID:    row.RoundID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		KickoffAt:  row.KickoffAt,
		HomeGoals:  nullInt64ToIntPtr(row.HomeGoals),
		AwayGoals:  nullInt64ToIntPtr(row.AwayGoals),
		Status:     row.Status,
	}
}
