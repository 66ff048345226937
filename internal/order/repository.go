package order

import "sync"

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	// ListBySession returns the session's orders, oldest first.
	ListBySession(sessionID string) ([]Order, error)
}

// InMemoryRepository is used for tests and the demo binary.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListBySession(sessionID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.SessionID == sessionID {
			out = append(out, ord)
		}
	}
	return out, nil
}
