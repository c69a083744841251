package postgres

import "time"

type userTableModel struct {
	ID           int64     `db:"id"`
	GivenName    string    `db:"given_name"`
	FamilyName   string    `db:"family_name"`
	RegisteredAt time.Time `db:"registered_at"`
	Active       bool      `db:"active"`
}

type userInsertModel struct {
	GivenName    string    `db:"given_name"`
	FamilyName   string    `db:"family_name"`
	RegisteredAt time.Time `db:"registered_at"`
	Active       bool      `db:"active"`
}
