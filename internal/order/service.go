package order

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrEmptyCart      = errors.New("empty cart")
	ErrInvalidTotals  = errors.New("order totals are inconsistent")
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create persists a new order. The caller supplies the price breakdown;
// Create re-checks the grand total against subtotal - discount + shipping
// so a buggy or tampering caller cannot store an inconsistent order.
func (s *Service) Create(ord Order) (Order, error) {
	if ord.SessionID == "" {
		return Order{}, ErrInvalidSession
	}
	if len(ord.Cart) == 0 {
		return Order{}, ErrEmptyCart
	}
	if ord.Quantity <= 0 || ord.Subtotal < 0 || ord.Discount < 0 || ord.ShippingPrice < 0 || ord.GrandPrice < 0 {
		return Order{}, ErrInvalidTotals
	}
	want := ord.Subtotal - ord.Discount + ord.ShippingPrice
	if math.Abs(want-ord.GrandPrice) > 0.01 {
		return Order{}, ErrInvalidTotals
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ord.OrderID = uuid.NewString()
	ord.Status = StatusCreated
	ord.CreatedAt = now
	ord.UpdatedAt = now
	return s.repo.Create(ord)
}

// ListBySession returns the session's orders, oldest first.
func (s *Service) ListBySession(sessionID string) ([]Order, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	return s.repo.ListBySession(sessionID)
}
