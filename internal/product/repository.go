package product

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned by DecrementStock when the product is
	// missing, inactive, or does not hold enough stock at write time.
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository interface {
	List() ([]Product, error)

	// ListActive returns only purchasable products, the set the public
	// catalog shows.
	ListActive() ([]Product, error)

	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)

	// DecrementStock applies `stock -= qty, unitsSold += qty` only if the
	// product is active and stock >= qty at the moment of the write.
	DecrementStock(id int, qty int) error

	// RestoreStock is the compensating write for a checkout that failed
	// after some decrements already applied.
	RestoreStock(id int, qty int) error
}

// InMemoryRepository is used by tests and local scenarios. The decrement
// check runs under the lock, so it gives the same compare-and-swap
// semantics as the conditional UPDATE in Postgres.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	nextID  int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListActive() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) DecrementStock(id int, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID != id {
			continue
		}
		if !r.storage[i].IsActive || r.storage[i].StockQuantity < qty {
			return ErrInsufficientStock
		}
		r.storage[i].StockQuantity -= qty
		r.storage[i].UnitsSold += qty
		return nil
	}
	return ErrInsufficientStock
}

func (r *InMemoryRepository) RestoreStock(id int, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID != id {
			continue
		}
		r.storage[i].StockQuantity += qty
		if r.storage[i].UnitsSold >= qty {
			r.storage[i].UnitsSold -= qty
		} else {
			r.storage[i].UnitsSold = 0
		}
		return nil
	}
	return ErrNotFound
}
