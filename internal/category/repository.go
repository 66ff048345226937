package category

import "sync"

// Repository provides access to category rows.
type Repository interface {
	List(limit int) ([]Category, error)
}

// InMemoryRepository serves a fixed category list, used by tests and the
// demo binary.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Category, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List(limit int) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.storage)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Category, n)
	copy(out, r.storage[:n])
	return out, nil
}
