package postgres

import "time"

type snapshotTableModel struct {
	ID            int64     `db:"id"`
	CacheKey      string    `db:"cache_key"`
	Payload       []byte    `db:"payload"`
	SavedAt       time.Time `db:"saved_at"`
	Source        string    `db:"source"`
	SchemaVersion int       `db:"schema_version"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type snapshotInsertModel struct {
	CacheKey      string    `db:"cache_key"`
	Payload       []byte    `db:"payload"`
	SavedAt       time.Time `db:"saved_at"`
	Source        string    `db:"source"`
	SchemaVersion int       `db:"schema_version"`
}
