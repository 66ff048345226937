package checkout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/modacart/storefront-backend/internal/cart"
	"github.com/modacart/storefront-backend/internal/coupon"
	"github.com/modacart/storefront-backend/internal/order"
	"github.com/modacart/storefront-backend/internal/pricing"
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrNotAtPayment   = errors.New("checkout is not at the payment step")
	ErrEmptyCart      = errors.New("cart is empty")
)

// ValidationError reports the fields a step still needs before the flow
// may advance or submit.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %d", len(e.Fields))
}

// QuoteProvider supplies the priced cart at submission time.
type QuoteProvider interface {
	Summary(sessionID string) (pricing.Summary, error)
}

// OrderPlacer is the order-submission collaborator the flow hands the
// finished draft to.
type OrderPlacer interface {
	Create(ord order.Order) (order.Order, error)
}

// Service drives the linear checkout flow: three steps, no skipping,
// strict per-step validation before advancing, and a single in-flight
// submission per session.
type Service struct {
	drafts  *DraftStore
	quotes  QuoteProvider
	orders  OrderPlacer
	carts   cart.ServiceInterface
	coupons coupon.ServiceInterface

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(drafts *DraftStore, quotes QuoteProvider, orders OrderPlacer, carts cart.ServiceInterface, coupons coupon.ServiceInterface) *Service {
	return &Service{
		drafts:   drafts,
		quotes:   quotes,
		orders:   orders,
		carts:    carts,
		coupons:  coupons,
		inFlight: make(map[string]bool),
	}
}

func (s *Service) Draft(sessionID string) Draft {
	return s.drafts.Get(sessionID)
}

// UpdateSections overwrites the draft sections present in the payload.
// Updating a section does not move the flow; only Next/Prev do.
type UpdateSections struct {
	Customer *CustomerInfo    `json:"customer,omitempty"`
	Shipping *ShippingAddress `json:"shipping,omitempty"`
	Payment  *Payment         `json:"payment,omitempty"`
}

func (s *Service) Update(sessionID string, u UpdateSections) Draft {
	d := s.drafts.Get(sessionID)
	if u.Customer != nil {
		d.Customer = *u.Customer
	}
	if u.Shipping != nil {
		d.Shipping = *u.Shipping
	}
	if u.Payment != nil {
		d.Payment = *u.Payment
	}
	s.drafts.Put(sessionID, d)
	return d
}

// Next advances the flow by one step after validating the current step's
// required fields. At the payment step it is a no-op.
func (s *Service) Next(sessionID string) (Draft, error) {
	d := s.drafts.Get(sessionID)
	if d.Step >= StepPayment {
		return d, nil
	}
	if missing := missingFields(d, d.Step); len(missing) > 0 {
		return d, &ValidationError{Fields: missing}
	}
	d.Step++
	s.drafts.Put(sessionID, d)
	return d, nil
}

// Prev moves the flow back one step. At the first step it is a no-op.
func (s *Service) Prev(sessionID string) Draft {
	d := s.drafts.Get(sessionID)
	if d.Step > StepCustomerInfo {
		d.Step--
		s.drafts.Put(sessionID, d)
	}
	return d
}

// Submit finalizes the checkout: it prices the cart, hands the order to
// the order collaborator and, only once that succeeds, clears the draft,
// the cart and the applied coupon. On any failure the draft and step are
// preserved so the shopper can retry. A session may have only one
// submission in flight at a time.
func (s *Service) Submit(sessionID string) (order.Order, error) {
	d := s.drafts.Get(sessionID)
	if d.Step != StepPayment {
		return order.Order{}, ErrNotAtPayment
	}
	if missing := missingFields(d, StepPayment); len(missing) > 0 {
		return order.Order{}, &ValidationError{Fields: missing}
	}

	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return order.Order{}, ErrSubmitInFlight
	}
	s.inFlight[sessionID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	summary, err := s.quotes.Summary(sessionID)
	if err != nil {
		return order.Order{}, err
	}
	if summary.Empty {
		return order.Order{}, ErrEmptyCart
	}

	cartMap := make(map[string]int, len(summary.Items))
	quantity := 0
	for _, item := range summary.Items {
		cartMap[strconv.Itoa(item.Product.ID)] = item.Quantity
		quantity += item.Quantity
	}

	ord := order.Order{
		SessionID:       sessionID,
		Cart:            cartMap,
		Quantity:        quantity,
		Subtotal:        summary.Pricing.Subtotal,
		Discount:        summary.Pricing.Discount,
		ShippingPrice:   summary.Pricing.Shipping,
		GrandPrice:      summary.Pricing.Total,
		CustomerName:    strings.TrimSpace(d.Customer.FirstName + " " + d.Customer.LastName),
		CustomerEmail:   d.Customer.Email,
		ShippingAddress: formatAddress(d.Shipping),
	}
	if summary.Coupon != nil {
		ord.CouponCode = summary.Coupon.Code
	}

	created, err := s.orders.Create(ord)
	if err != nil {
		// draft intentionally left intact for retry
		return order.Order{}, err
	}

	s.drafts.Delete(sessionID)
	if err := s.carts.Clear(sessionID); err != nil {
		logrus.WithField("sessionID", sessionID).WithError(err).Warn("checkout: could not clear cart after submission")
	}
	s.coupons.Remove(sessionID)
	return created, nil
}

func formatAddress(a ShippingAddress) string {
	parts := []string{a.Line1}
	if a.Line2 != "" {
		parts = append(parts, a.Line2)
	}
	parts = append(parts, a.City)
	if a.State != "" {
		parts = append(parts, a.State)
	}
	parts = append(parts, a.PostalCode, a.Country)
	return strings.Join(parts, ", ")
}

func missingFields(d Draft, step Step) map[string]string {
	missing := map[string]string{}
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing[field] = field + " is required"
		}
	}
	switch step {
	case StepCustomerInfo:
		require("firstName", d.Customer.FirstName)
		require("lastName", d.Customer.LastName)
		require("email", d.Customer.Email)
	case StepShipping:
		require("line1", d.Shipping.Line1)
		require("city", d.Shipping.City)
		require("postalCode", d.Shipping.PostalCode)
		require("country", d.Shipping.Country)
	case StepPayment:
		require("cardholderName", d.Payment.CardholderName)
		require("cardNumber", d.Payment.CardNumber)
		require("expiryMonth", d.Payment.ExpiryMonth)
		require("expiryYear", d.Payment.ExpiryYear)
		require("cvc", d.Payment.CVC)
	}
	return missing
}
