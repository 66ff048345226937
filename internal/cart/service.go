package cart

import "errors"

var (
	ErrInvalidSession  = errors.New("invalid session")
	ErrInvalidProduct  = errors.New("invalid product id")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ServiceInterface lists the cart operations other packages depend on.
type ServiceInterface interface {
	Get(sessionID string) ([]Line, error)
	Clear(sessionID string) error
}

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add puts qty units of a product into the cart, incrementing an existing
// line. qty must be at least 1.
func (s *Service) Add(sessionID string, productID, qty int) ([]Line, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	if productID <= 0 {
		return nil, ErrInvalidProduct
	}
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	return s.repo.Add(sessionID, productID, qty)
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line, making UpdateQuantity(id, 0) equivalent to Remove(id).
// Repeated identical calls are idempotent.
func (s *Service) UpdateQuantity(sessionID string, productID, qty int) ([]Line, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	if productID <= 0 {
		return nil, ErrInvalidProduct
	}
	if qty <= 0 {
		return s.repo.Remove(sessionID, productID)
	}
	return s.repo.SetQuantity(sessionID, productID, qty)
}

// Remove deletes a line from the cart. Removing an absent line is a no-op,
// not an error.
func (s *Service) Remove(sessionID string, productID int) ([]Line, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	if productID <= 0 {
		return nil, ErrInvalidProduct
	}
	return s.repo.Remove(sessionID, productID)
}

func (s *Service) Get(sessionID string) ([]Line, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	return s.repo.Get(sessionID)
}

// Clear empties the session's cart.
func (s *Service) Clear(sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	return s.repo.Clear(sessionID)
}
