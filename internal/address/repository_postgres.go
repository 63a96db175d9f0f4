package address

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS address (
			address_id   SERIAL PRIMARY KEY,
			user_id      INT NOT NULL,
			address_name TEXT NOT NULL,
			address_desc TEXT NOT NULL,
			phone        TEXT NOT NULL,
			created_at   TEXT,
			updated_at   TEXT
		)
	`

	addressColumns = `address_id, user_id, address_name, address_desc, phone, created_at, updated_at`

	listAddressesQuery = `SELECT ` + addressColumns + ` FROM address WHERE user_id = $1 ORDER BY address_id`
	getAddressQuery    = `SELECT ` + addressColumns + ` FROM address WHERE user_id = $1 AND address_id = $2`
	insertAddressQuery = `
		INSERT INTO address (user_id, address_name, address_desc, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + addressColumns
	updateAddressQuery = `
		UPDATE address
		SET address_name = $3, address_desc = $4, phone = $5, updated_at = $6
		WHERE user_id = $1 AND address_id = $2
		RETURNING ` + addressColumns
	deleteAddressQuery = `DELETE FROM address WHERE user_id = $1 AND address_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAddress(row scanner) (Address, error) {
	var (
		a                    Address
		createdAt, updatedAt sql.NullString
	)
	if err := row.Scan(&a.AddressID, &a.UserID, &a.AddressName, &a.AddressDesc, &a.Phone, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Address{}, ErrNotFound
		}
		return Address{}, err
	}
	a.CreatedAt = createdAt.String
	a.UpdatedAt = updatedAt.String
	return a, nil
}

func (r *PostgresRepository) List(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(userID, addressID int) (Address, error) {
	return scanAddress(r.db.QueryRow(getAddressQuery, userID, addressID))
}

func (r *PostgresRepository) Add(userID int, f Fields, at string) (Address, error) {
	return scanAddress(r.db.QueryRow(insertAddressQuery, userID, f.AddressName, f.AddressDesc, f.Phone, at))
}

func (r *PostgresRepository) Update(userID, addressID int, f Fields, at string) (Address, error) {
	return scanAddress(r.db.QueryRow(updateAddressQuery, userID, addressID, f.AddressName, f.AddressDesc, f.Phone, at))
}

func (r *PostgresRepository) Delete(userID, addressID int) error {
	res, err := r.db.Exec(deleteAddressQuery, userID, addressID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
