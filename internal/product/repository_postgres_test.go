package product

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDecrementStock_Applies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE products").
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DecrementStock(1, 3); err != nil {
		t.Fatalf("expected decrement to apply: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDecrementStock_InsufficientWhenNoRowMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// the WHERE clause re-checks stock at write time; zero rows means the
	// precondition no longer held
	mock.ExpectExec("UPDATE products").
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DecrementStock(1, 99); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestRestoreStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE products").
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RestoreStock(1, 3); err != nil {
		t.Fatalf("expected restore to apply: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "stock_quantity", "units_sold", "is_active", "image_url", "created_at"}))

	if _, err := repo.GetByID(9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
