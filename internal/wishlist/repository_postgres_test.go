package wishlist

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresAdd_AlreadyPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO wishlist").
		WithArgs(4, "gpu:gpu-rtx4090", "2026-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"item_keys"}))

	_, err = NewPostgresRepository(db).Add(4, "gpu:gpu-rtx4090", "2026-01-01T00:00:00Z")
	if err != ErrAlreadyInWishlist {
		t.Fatalf("expected ErrAlreadyInWishlist, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresAdd_ReturnsArray(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery("INSERT INTO wishlist").
		WillReturnRows(sqlmock.NewRows([]string{"item_keys"}).AddRow("{monitor:mon-27-4k-144,gpu:gpu-rtx4090}"))

	keys, err := NewPostgresRepository(db).Add(4, "gpu:gpu-rtx4090", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "monitor:mon-27-4k-144" || keys[1] != "gpu:gpu-rtx4090" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestPostgresRemove_NotPresent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery("UPDATE wishlist").WillReturnError(sql.ErrNoRows)

	if _, err := NewPostgresRepository(db).Remove(4, "gpu:x", ""); err != ErrNotInWishlist {
		t.Fatalf("expected ErrNotInWishlist, got %v", err)
	}
}

func TestPostgresKeys_NoRow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectQuery("SELECT item_keys FROM wishlist").WithArgs(4).WillReturnError(sql.ErrNoRows)

	keys, err := NewPostgresRepository(db).Keys(4)
	if err != nil || len(keys) != 0 {
		t.Fatalf("expected empty keys, got %v %v", keys, err)
	}
}
