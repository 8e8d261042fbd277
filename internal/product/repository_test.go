package product

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInMemoryListActive_FiltersDeactivated(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Serum", StockQuantity: 5, IsActive: true},
		{ID: 2, Name: "Discontinued", StockQuantity: 5, IsActive: false},
	})

	active, err := repo.ListActive()
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].ID != 1 {
		t.Fatalf("expected only the active product, got %+v", active)
	}

	all, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("List must keep deactivated products, got %d", len(all))
	}
}

func TestInMemoryDecrementStock_ChecksAtWriteTime(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Serum", Price: decimal.NewFromInt(10), StockQuantity: 2, IsActive: true},
	})

	if err := repo.DecrementStock(1, 2); err != nil {
		t.Fatalf("first decrement should apply: %v", err)
	}
	if err := repo.DecrementStock(1, 1); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock once empty, got %v", err)
	}

	p, _ := repo.GetByID(1)
	if p.StockQuantity != 0 {
		t.Errorf("stock must never go negative, got %d", p.StockQuantity)
	}
	if p.UnitsSold != 2 {
		t.Errorf("expected unitsSold 2, got %d", p.UnitsSold)
	}
}

func TestInMemoryDecrementStock_InactiveProduct(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Discontinued", StockQuantity: 5, IsActive: false},
	})
	if err := repo.DecrementStock(1, 1); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock for inactive product, got %v", err)
	}
}

func TestInMemoryDecrementStock_ConcurrentCAS(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Limited", StockQuantity: 5, IsActive: true},
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			errs[slot] = repo.DecrementStock(1, 3)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one decrement to win, got %d", successes)
	}

	p, _ := repo.GetByID(1)
	if p.StockQuantity != 2 {
		t.Errorf("expected final stock 2, got %d", p.StockQuantity)
	}
}

func TestInMemoryRestoreStock_ReversesDecrement(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Serum", StockQuantity: 5, IsActive: true},
	})
	if err := repo.DecrementStock(1, 3); err != nil {
		t.Fatal(err)
	}
	if err := repo.RestoreStock(1, 3); err != nil {
		t.Fatal(err)
	}

	p, _ := repo.GetByID(1)
	if p.StockQuantity != 5 || p.UnitsSold != 0 {
		t.Errorf("expected stock 5 / unitsSold 0, got %d / %d", p.StockQuantity, p.UnitsSold)
	}
}
