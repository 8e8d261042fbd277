package cart

import (
	"errors"
	"sort"
	"sync"

	"github.com/radiantglow/shop-backend/internal/product"
)

var ErrProductNotFound = errors.New("product not found")

// Repository stores one set of cart lines per user. Mutations are
// last-writer-wins per (user, product) record; there is no cross-line
// invariant to protect.
type Repository interface {
	GetCartLines(userID int) ([]Line, error)

	// SetItem upserts the desired quantity. qty <= 0 removes the line;
	// zero-quantity lines are never stored.
	SetItem(userID int, productID int, qty int) ([]Line, error)

	RemoveItem(userID int, productID int) ([]Line, error)
	ClearCart(userID int) error
}

// InMemoryRepository joins against a product repository on read, the same
// shape the Postgres implementation gets from its JOIN.
type InMemoryRepository struct {
	mu       sync.RWMutex
	carts    map[int]map[int]int // userID -> productID -> qty
	products product.Repository
}

func NewInMemoryRepository(products product.Repository) *InMemoryRepository {
	return &InMemoryRepository{
		carts:    make(map[int]map[int]int),
		products: products,
	}
}

func (r *InMemoryRepository) GetCartLines(userID int) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.linesLocked(userID)
}

func (r *InMemoryRepository) SetItem(userID int, productID int, qty int) ([]Line, error) {
	if _, err := r.products.GetByID(productID); err != nil {
		return nil, ErrProductNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.carts[userID]
	if c == nil {
		c = make(map[int]int)
		r.carts[userID] = c
	}
	if qty <= 0 {
		delete(c, productID)
	} else {
		c[productID] = qty
	}
	return r.linesLocked(userID)
}

func (r *InMemoryRepository) RemoveItem(userID int, productID int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts[userID], productID)
	return r.linesLocked(userID)
}

func (r *InMemoryRepository) ClearCart(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

func (r *InMemoryRepository) linesLocked(userID int) ([]Line, error) {
	c := r.carts[userID]
	out := make([]Line, 0, len(c))
	for pid, qty := range c {
		p, err := r.products.GetByID(pid)
		if err != nil {
			// product removed from catalog; skip the stale line
			continue
		}
		out = append(out, Line{
			ProductID:     pid,
			Quantity:      qty,
			ProductName:   p.Name,
			UnitPrice:     p.Price,
			StockQuantity: p.StockQuantity,
			IsActive:      p.IsActive,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}
