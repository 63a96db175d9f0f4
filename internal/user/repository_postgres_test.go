package user

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var userColumns = []string{"user_id", "email", "password", "display_name", "created_at", "updated_at"}

func TestPostgresRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).AddRow(4, "x@example.com", "$2a$hash", "X", nil, "2026-01-02T00:00:00Z")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).WithArgs("x@example.com").WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	u, err := repo.GetByEmail("  x@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.ID != 4 || u.DisplayName != "X" || u.CreatedAt != "" || u.UpdatedAt != "2026-01-02T00:00:00Z" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).WithArgs(9).WillReturnError(sql.ErrNoRows)

	if _, err := NewPostgresRepository(db).GetByID(9); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO store_user")).
		WithArgs("x@example.com", "hash", "X", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := NewPostgresRepository(db).Create(User{Email: "x@example.com", Password: "hash", DisplayName: "X"})
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO store_user")).
		WithArgs("y@example.com", "hash", "Y", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(12))

	u, err := NewPostgresRepository(db).Create(User{Email: "y@example.com", Password: "hash", DisplayName: "Y", CreatedAt: "2026-01-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID != 12 {
		t.Fatalf("expected id 12, got %d", u.ID)
	}
}
