package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func cartRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"product_id", "quantity", "name", "price", "stock_quantity", "is_active"})
}

func TestGetCartLines_JoinsProductState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM cart_items").
		WithArgs(7).
		WillReturnRows(cartRows().
			AddRow(1, 2, "Serum", "10.00", 8, true).
			AddRow(3, 1, "Toner", "5.50", 0, false))

	lines, err := repo.GetCartLines(7)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("unexpected price %s", lines[0].UnitPrice)
	}
	if lines[1].IsActive {
		t.Error("inactive product state must come through the join")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetItem_ZeroQuantityRemovesLine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(7, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM cart_items").
		WithArgs(7).
		WillReturnRows(cartRows())

	lines, err := repo.SetItem(7, 1, 0)
	if err != nil {
		t.Fatalf("set item failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(lines))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetItem_UpsertsQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(7, 1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM cart_items").
		WithArgs(7).
		WillReturnRows(cartRows().AddRow(1, 3, "Serum", "10.00", 8, true))

	lines, err := repo.SetItem(7, 1, 3)
	if err != nil {
		t.Fatalf("set item failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %+v", lines)
	}
}

func TestSetItem_UnknownProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	if _, err := repo.SetItem(7, 99, 1); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
