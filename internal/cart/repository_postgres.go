package cart

import (
	"database/sql"
	"errors"

	"github.com/goccy/go-json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS cart (
			user_id    INT PRIMARY KEY,
			lines      JSONB NOT NULL DEFAULT '[]'::jsonb,
			updated_at TEXT
		)
	`

	getLinesQuery  = `SELECT lines FROM cart WHERE user_id = $1`
	saveLinesQuery = `
		INSERT INTO cart (user_id, lines, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET lines = EXCLUDED.lines,
			updated_at = EXCLUDED.updated_at
	`
	clearCartQuery = `DELETE FROM cart WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetLines returns an empty cart for users that never added anything.
func (r *PostgresRepository) GetLines(userID int) ([]Line, error) {
	var raw []byte
	if err := r.db.QueryRow(getLinesQuery, userID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []Line{}, nil
		}
		return nil, err
	}

	lines := make([]Line, 0)
	if len(raw) == 0 {
		return lines, nil
	}
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *PostgresRepository) SaveLines(userID int, lines []Line, updatedAt string) error {
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(saveLinesQuery, userID, raw, sql.NullString{String: updatedAt, Valid: updatedAt != ""})
	return err
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}
