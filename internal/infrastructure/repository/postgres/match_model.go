package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         int64         `db:"id"`
	RoundID    int64         `db:"round_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	KickoffAt  time.Time     `db:"kickoff_at"`
	HomeGoals  sql.NullInt64 `db:"home_goals"`
	AwayGoals  sql.NullInt64 `db:"away_goals"`
	Status     string        `db:"status"`
}

type matchInsertModel struct {
	ID         int64     `db:"id"`
	RoundID    int64     `db:"round_id"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	KickoffAt  time.Time `db:"kickoff_at"`
	Status     string    `db:"status"`
}
