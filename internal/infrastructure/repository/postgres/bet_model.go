package postgres

import (
	"database/sql"
	"time"
)

type betTableModel struct {
	ID         int64         `db:"id"`
	UserID     int64         `db:"user_id"`
	MatchID    int64         `db:"match_id"`
	Type       string        `db:"type"`
	Prediction string        `db:"prediction"`
	Wager      int           `db:"wager"`
	Awarded    sql.NullInt64 `db:"awarded"`
	PlacedAt   time.Time     `db:"placed_at"`
}

type betInsertModel struct {
	UserID     int64     `db:"user_id"`
	MatchID    int64     `db:"match_id"`
	Type       string    `db:"type"`
	Prediction string    `db:"prediction"`
	Wager      int       `db:"wager"`
	PlacedAt   time.Time `db:"placed_at"`
}
