package storage

import (
	"database/sql"

	"github.com/rohanthewiz/serr"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	upsertItemQuery = `
		INSERT INTO visitor_storage (visitor_id, item_key, item_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (visitor_id, item_key)
		DO UPDATE SET item_value = EXCLUDED.item_value, updated_at = EXCLUDED.updated_at
	`
	getItemQuery = `SELECT item_value FROM visitor_storage WHERE visitor_id = $1 AND item_key = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Available pings the database; a nil or unreachable db makes writes no-ops upstream.
func (r *PostgresRepository) Available() bool {
	if r == nil || r.db == nil {
		return false
	}
	return r.db.Ping() == nil
}

func (r *PostgresRepository) Set(owner, key, value string) error {
	if _, err := r.db.Exec(upsertItemQuery, owner, key, value); err != nil {
		return serr.Wrap(err, "failed to store visitor item")
	}
	return nil
}

func (r *PostgresRepository) Get(owner, key string) (string, error) {
	var v string
	if err := r.db.QueryRow(getItemQuery, owner, key).Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", serr.Wrap(err, "failed to read visitor item")
	}
	return v, nil
}
