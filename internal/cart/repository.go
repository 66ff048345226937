package cart

import (
	"sync"
)

// Repository stores per-session carts as product id -> quantity maps.
// Carts are created lazily: reading an unknown session yields an empty
// cart, never an error.
type Repository interface {
	// Add adjusts the quantity of a line by delta (negative deltas
	// decrement). Lines whose quantity drops to zero or below are removed.
	Add(sessionID string, productID, delta int) ([]Line, error)
	// SetQuantity overwrites a line's quantity. qty <= 0 removes the line.
	SetQuantity(sessionID string, productID, qty int) ([]Line, error)
	// Remove deletes a line; removing an absent line is a no-op.
	Remove(sessionID string, productID int) ([]Line, error)
	Get(sessionID string) ([]Line, error)
	Clear(sessionID string) error
}

// InMemoryRepository is used for tests, the demo binary and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]map[int]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]map[int]int)}
}

func (r *InMemoryRepository) items(sessionID string) map[int]int {
	m, ok := r.carts[sessionID]
	if !ok {
		m = make(map[int]int)
		r.carts[sessionID] = m
	}
	return m
}

func (r *InMemoryRepository) Add(sessionID string, productID, delta int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.items(sessionID)
	m[productID] += delta
	if m[productID] <= 0 {
		delete(m, productID)
	}
	return linesFromMap(m), nil
}

func (r *InMemoryRepository) SetQuantity(sessionID string, productID, qty int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.items(sessionID)
	if qty <= 0 {
		delete(m, productID)
	} else {
		m[productID] = qty
	}
	return linesFromMap(m), nil
}

func (r *InMemoryRepository) Remove(sessionID string, productID int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.items(sessionID)
	delete(m, productID)
	return linesFromMap(m), nil
}

func (r *InMemoryRepository) Get(sessionID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return linesFromMap(r.carts[sessionID]), nil
}

func (r *InMemoryRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
