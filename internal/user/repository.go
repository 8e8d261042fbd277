package user

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	GetByID(id int) (Profile, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[int]Profile
}

func NewInMemoryRepository(seed []Profile) *InMemoryRepository {
	r := &InMemoryRepository{profiles: make(map[int]Profile, len(seed))}
	for _, p := range seed {
		r.profiles[p.UserID] = p
	}
	return r
}

func (r *InMemoryRepository) GetByID(id int) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}
