package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lapolla/quiniela/internal/domain/round"
	qb "github.com/lapolla/quiniela/internal/platform/querybuilder"
)

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) ListBySeason(ctx context.Context, season string) ([]round.Round, error) {
	query, args, err := qb.Select("*").From("rounds").
		Where(qb.Eq("season", season)).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rounds query: %w", err)
	}

	var rows []roundTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rounds: %w", err)
	}

	out := make([]round.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, roundFromRow(row))
	}

	return out, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, roundID int64) (round.Round, bool, error) {
	query, args, err := qb.Select("*").From("rounds").
		Where(qb.Eq("id", roundID)).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build get round query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("get round: %w", err)
	}

	return roundFromRow(row), true, nil
}

func (r *RoundRepository) GetByNumber(ctx context.Context, number int, season string) (round.Round, bool, error) {
	query, args, err := qb.Select("*").From("rounds").
		Where(
			qb.Eq("number", number),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build get round by number query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("get round by number: %w", err)
	}

	return roundFromRow(row), true, nil
}

func (r *RoundRepository) Create(ctx context.Context, item round.Round) (round.Round, error) {
	insertModel := roundInsertModel{
		Number: item.Number,
		Season: item.Season,
		Closed: item.Closed,
	}
	query, args, err := qb.InsertModel("rounds", insertModel, "RETURNING id")
	if err != nil {
		return round.Round{}, fmt.Errorf("build insert round query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return round.Round{}, fmt.Errorf("insert round: %w", err)
	}

	return item, nil
}

func roundFromRow(row roundTableModel) round.Round {
	return round.Round{
		ID:     row.ID,
		Number: row.Number,
		Season: row.Season,
		Closed: row.Closed,
	}
}
