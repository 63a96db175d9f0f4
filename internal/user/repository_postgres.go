package user

import (
	"database/sql"
	"errors"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS store_user (
			user_id      SERIAL PRIMARY KEY,
			email        TEXT NOT NULL UNIQUE,
			password     TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			created_at   TEXT,
			updated_at   TEXT
		)
	`

	getUserByIDQuery = `
		SELECT user_id, email, password, display_name, created_at, updated_at
		FROM store_user
		WHERE user_id = $1
	`
	getUserByEmailQuery = `
		SELECT user_id, email, password, display_name, created_at, updated_at
		FROM store_user
		WHERE lower(email) = lower($1)
	`
	insertUserQuery = `
		INSERT INTO store_user (email, password, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING user_id
	`
	updateUserQuery = `
		UPDATE store_user
		SET display_name = $1,
			password = coalesce(nullif($2, ''), password),
			updated_at = coalesce(nullif($3, ''), updated_at)
		WHERE user_id = $4
		RETURNING user_id, email, password, display_name, created_at, updated_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return scanUser(r.db.QueryRow(getUserByIDQuery, id))
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return scanUser(r.db.QueryRow(getUserByEmailQuery, strings.TrimSpace(email)))
}

func (r *PostgresRepository) Create(user User) (User, error) {
	err := r.db.QueryRow(insertUserQuery,
		user.Email,
		user.Password,
		user.DisplayName,
		nullString(user.CreatedAt),
		nullString(user.UpdatedAt),
	).Scan(&user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	return scanUser(r.db.QueryRow(updateUserQuery,
		userUpdate.DisplayName,
		userUpdate.Password,
		userUpdate.UpdatedAt,
		id,
	))
}

func scanUser(scanner rowScanner) (User, error) {
	var (
		user      User
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := scanner.Scan(&user.ID, &user.Email, &user.Password, &user.DisplayName, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.CreatedAt = createdAt.String
	user.UpdatedAt = updatedAt.String
	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
