package postgres

type scoreTableModel struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	Season      string `db:"season"`
	TotalPoints int    `db:"total_points"`
	Hits        int    `db:"hits"`
	Misses      int    `db:"misses"`
	BetsSettled int    `db:"bets_settled"`
}

type scoreInsertModel struct {
	UserID      int64  `db:"user_id"`
	Season      string `db:"season"`
	TotalPoints int    `db:"total_points"`
	Hits        int    `db:"hits"`
	Misses      int    `db:"misses"`
	BetsSettled int    `db:"bets_settled"`
}
