package postgres

import "time"

type favoriteCountryTableModel struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	NOC       string    `db:"noc"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type favoriteCountryInsertModel struct {
	UserID string `db:"user_id"`
	NOC    string `db:"noc"`
}
