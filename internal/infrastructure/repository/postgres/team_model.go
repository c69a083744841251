package postgres

import "time"

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Short     string    `db:"short"`
	Venue     string    `db:"venue"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamInsertModel struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Short string `db:"short"`
	Venue string `db:"venue"`
}
