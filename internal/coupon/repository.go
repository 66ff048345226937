package coupon

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("coupon not found")

// RuleRepository serves the table of valid coupon codes.
type RuleRepository interface {
	Lookup(code string) (Coupon, error)
	List() ([]Coupon, error)
}

// InMemoryRules holds a fixed rule table, typically a theme's coupon set.
type InMemoryRules struct {
	mu    sync.RWMutex
	rules map[string]Coupon
	order []string
}

func NewInMemoryRules(seed []Coupon) *InMemoryRules {
	r := &InMemoryRules{rules: make(map[string]Coupon, len(seed))}
	for _, c := range seed {
		if _, dup := r.rules[c.Code]; !dup {
			r.order = append(r.order, c.Code)
		}
		r.rules[c.Code] = c
	}
	return r
}

func (r *InMemoryRules) Lookup(code string) (Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rules[code]
	if !ok {
		return Coupon{}, ErrNotFound
	}
	return c, nil
}

func (r *InMemoryRules) List() ([]Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Coupon, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.rules[code])
	}
	return out, nil
}

// SessionStore tracks the coupon applied to each session. At most one
// coupon is active per session.
type SessionStore struct {
	mu      sync.RWMutex
	applied map[string]Coupon
}

func NewSessionStore() *SessionStore {
	return &SessionStore{applied: make(map[string]Coupon)}
}

func (s *SessionStore) Get(sessionID string) (Coupon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.applied[sessionID]
	return c, ok
}

func (s *SessionStore) Set(sessionID string, c Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied[sessionID] = c
}

func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.applied, sessionID)
}
