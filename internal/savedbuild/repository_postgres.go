package savedbuild

import (
	"database/sql"

	"github.com/goccy/go-json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS saved_build (
			user_id        INT NOT NULL,
			build_id       BIGINT NOT NULL,
			config         JSONB NOT NULL,
			recommendation JSONB NOT NULL,
			saved_at       TEXT NOT NULL,
			PRIMARY KEY (user_id, build_id)
		)
	`

	listBuildsQuery = `
		SELECT build_id, config, recommendation, saved_at
		FROM saved_build
		WHERE user_id = $1
		ORDER BY build_id DESC
	`
	insertBuildQuery = `
		INSERT INTO saved_build (user_id, build_id, config, recommendation, saved_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	trimBuildsQuery = `
		DELETE FROM saved_build
		WHERE user_id = $1
			AND build_id NOT IN (
				SELECT build_id FROM saved_build
				WHERE user_id = $1
				ORDER BY build_id DESC
				LIMIT $2
			)
	`
	deleteBuildQuery = `DELETE FROM saved_build WHERE user_id = $1 AND build_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func (r *PostgresRepository) List(userID int) ([]SavedBuild, error) {
	return listBuilds(r.db, userID)
}

// Add inserts and trims in one transaction so a user never holds more than
// limit builds.
func (r *PostgresRepository) Add(userID int, b SavedBuild, limit int) ([]SavedBuild, error) {
	cfg, err := json.Marshal(b.Config)
	if err != nil {
		return nil, err
	}
	rec, err := json.Marshal(b.Recommendation)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(insertBuildQuery, userID, b.ID, cfg, rec, b.SavedAt); err != nil {
		return nil, err
	}
	if limit > 0 {
		if _, err := tx.Exec(trimBuildsQuery, userID, limit); err != nil {
			return nil, err
		}
	}
	out, err := listBuilds(tx, userID)
	if err != nil {
		return nil, err
	}
	return out, tx.Commit()
}

func (r *PostgresRepository) Delete(userID int, id int64) error {
	result, err := r.db.Exec(deleteBuildQuery, userID, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func listBuilds(q querier, userID int) ([]SavedBuild, error) {
	rows, err := q.Query(listBuildsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedBuild, 0)
	for rows.Next() {
		var (
			b        SavedBuild
			cfg, rec []byte
		)
		if err := rows.Scan(&b.ID, &cfg, &rec, &b.SavedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(cfg, &b.Config); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rec, &b.Recommendation); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
