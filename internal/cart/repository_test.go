package cart

import (
	"testing"

	"github.com/radiantglow/shop-backend/internal/product"
	"github.com/shopspring/decimal"
)

func newTestRepo() *InMemoryRepository {
	return NewInMemoryRepository(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Serum", Price: decimal.NewFromInt(10), StockQuantity: 8, IsActive: true},
		{ID: 2, Name: "Cream", Price: decimal.NewFromInt(4), StockQuantity: 3, IsActive: true},
	}))
}

func TestSetItem_LastWriterWins(t *testing.T) {
	repo := newTestRepo()

	if _, err := repo.SetItem(1, 1, 2); err != nil {
		t.Fatal(err)
	}
	lines, err := repo.SetItem(1, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("expected a single line with quantity 5, got %+v", lines)
	}
}

func TestSetItem_ZeroQuantityIsNotStored(t *testing.T) {
	repo := newTestRepo()

	if _, err := repo.SetItem(1, 1, 2); err != nil {
		t.Fatal(err)
	}
	lines, err := repo.SetItem(1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("zero-quantity lines must be removed, got %+v", lines)
	}
}

func TestSetItem_UnknownProductRejected(t *testing.T) {
	repo := newTestRepo()
	if _, err := repo.SetItem(1, 99, 1); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetCartLines_ReflectsLiveProductState(t *testing.T) {
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Serum", Price: decimal.NewFromInt(10), StockQuantity: 8, IsActive: true},
	})
	repo := NewInMemoryRepository(products)

	if _, err := repo.SetItem(1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := products.DecrementStock(1, 6); err != nil {
		t.Fatal(err)
	}

	lines, err := repo.GetCartLines(1)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].StockQuantity != 2 {
		t.Errorf("cart reads must see fresh stock, got %d", lines[0].StockQuantity)
	}
}

func TestClearCart(t *testing.T) {
	repo := newTestRepo()
	if _, err := repo.SetItem(1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.SetItem(1, 2, 1); err != nil {
		t.Fatal(err)
	}

	if err := repo.ClearCart(1); err != nil {
		t.Fatal(err)
	}
	lines, err := repo.GetCartLines(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}
}
