package address

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressCols = []string{"address_id", "user_id", "address_name", "address_desc", "phone", "created_at", "updated_at"}

func TestPostgresGet_NoRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM address WHERE user_id = \\$1 AND address_id = \\$2").
		WithArgs(1, 9).WillReturnError(sql.ErrNoRows)

	_, err = NewPostgresRepository(db).Get(1, 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAdd_Returning(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	f := Fields{AddressName: "Home", AddressDesc: "12 MG Road", Phone: "9876543210"}
	mock.ExpectQuery("INSERT INTO address").
		WithArgs(1, "Home", "12 MG Road", "9876543210", "2026-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows(addressCols).
			AddRow(4, 1, "Home", "12 MG Road", "9876543210", "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z"))

	a, err := NewPostgresRepository(db).Add(1, f, "2026-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 4, a.AddressID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete_NothingDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM address").WithArgs(1, 4).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, NewPostgresRepository(db).Delete(1, 4), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
