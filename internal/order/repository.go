package order

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrNotFound             = errors.New("order not found")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// Repository defines persistence operations for the order ledger. Create
// writes the order and all of its lines as one unit: either everything is
// durable or nothing is.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	ListAll() ([]Order, error)

	// UpdateStatus persists a status the caller already validated against
	// the transition rules.
	UpdateStatus(id int, status Status) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.storage {
		if existing.OrderNumber == ord.OrderNumber {
			return Order{}, ErrDuplicateOrderNumber
		}
	}

	ord.ID = r.nextID
	r.nextID++

	lines := make([]Line, len(ord.Lines))
	copy(lines, ord.Lines)
	for i := range lines {
		lines[i].OrderID = ord.ID
	}
	ord.Lines = lines

	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.storage {
		if ord.ID == id {
			return cloneOrder(ord), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.storage {
		if ord.UserID == userID {
			out = append(out, cloneOrder(ord))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *InMemoryRepository) ListAll() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.storage))
	for _, ord := range r.storage {
		out = append(out, cloneOrder(ord))
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("update status: %w", ErrNotFound)
}

func cloneOrder(ord Order) Order {
	lines := make([]Line, len(ord.Lines))
	copy(lines, ord.Lines)
	ord.Lines = lines
	return ord
}

func sortNewestFirst(orders []Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
}
