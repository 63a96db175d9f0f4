package wishlist

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS wishlist (
			user_id    INT PRIMARY KEY,
			item_keys  TEXT[] NOT NULL DEFAULT '{}',
			updated_at TEXT
		)
	`

	getKeysQuery = `SELECT item_keys FROM wishlist WHERE user_id = $1`
	addKeyQuery  = `
		INSERT INTO wishlist (user_id, item_keys, updated_at)
		VALUES ($1, ARRAY[$2::text], $3)
		ON CONFLICT (user_id) DO UPDATE
		SET item_keys = array_append(wishlist.item_keys, $2::text),
			updated_at = $3
		WHERE NOT ($2::text = ANY(wishlist.item_keys))
		RETURNING item_keys
	`
	removeKeyQuery = `
		UPDATE wishlist
		SET item_keys = array_remove(item_keys, $2::text),
			updated_at = $3
		WHERE user_id = $1
			AND ($2::text = ANY(item_keys))
		RETURNING item_keys
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Keys(userID int) ([]string, error) {
	var arr pq.StringArray
	if err := r.db.QueryRow(getKeysQuery, userID).Scan(pq.Array(&arr)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, err
	}
	return keysOf(arr), nil
}

// Add appends key unless already present; the conflict clause updates
// nothing in that case, so no row comes back.
func (r *PostgresRepository) Add(userID int, key string, updatedAt string) ([]string, error) {
	var arr pq.StringArray
	err := r.db.QueryRow(addKeyQuery, userID, key, updatedAt).Scan(pq.Array(&arr))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, err
	}
	return keysOf(arr), nil
}

func (r *PostgresRepository) Remove(userID int, key string, updatedAt string) ([]string, error) {
	var arr pq.StringArray
	err := r.db.QueryRow(removeKeyQuery, userID, key, updatedAt).Scan(pq.Array(&arr))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotInWishlist
		}
		return nil, err
	}
	return keysOf(arr), nil
}

func keysOf(arr pq.StringArray) []string {
	out := make([]string, len(arr))
	copy(out, arr)
	return out
}
