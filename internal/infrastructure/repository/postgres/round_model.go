package postgres

type roundTableModel struct {
	ID     int64  `db:"id"`
	Number int    `db:"number"`
	Season string `db:"season"`
	Closed bool   `db:"closed"`
}

type roundInsertModel struct {
	Number int    `db:"number"`
	Season string `db:"season"`
	Closed bool   `db:"closed"`
}
