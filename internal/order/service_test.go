package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() Order {
	return Order{
		SessionID:       "sess-1",
		Cart:            map[string]int{"1": 2, "3": 1},
		Quantity:        3,
		Subtotal:        140,
		Discount:        14,
		ShippingPrice:   25,
		GrandPrice:      151,
		CustomerName:    "June Okafor",
		CustomerEmail:   "june@example.com",
		ShippingAddress: "12 Cedar Row, Portland, 97201, US",
	}
}

func TestCreate_AssignsIdentityAndTimestamps(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	created, err := s.Create(validOrder())
	require.NoError(t, err)
	assert.NotEmpty(t, created.OrderID)
	assert.Equal(t, StatusCreated, created.Status)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreate_RejectsInconsistentTotals(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	ord := validOrder()
	ord.GrandPrice = 160 // subtotal - discount + shipping is 151
	_, err := s.Create(ord)
	assert.ErrorIs(t, err, ErrInvalidTotals)

	// sub-cent drift from float arithmetic is tolerated
	ord = validOrder()
	ord.GrandPrice = 151.004
	_, err = s.Create(ord)
	assert.NoError(t, err)
}

func TestCreate_RejectsNegativeComponents(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	ord := validOrder()
	ord.Discount = -5
	_, err := s.Create(ord)
	assert.ErrorIs(t, err, ErrInvalidTotals)
}

func TestCreate_RejectsMissingSessionOrCart(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	ord := validOrder()
	ord.SessionID = ""
	_, err := s.Create(ord)
	assert.ErrorIs(t, err, ErrInvalidSession)

	ord = validOrder()
	ord.Cart = nil
	_, err = s.Create(ord)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestListBySession_OnlyOwnOrders(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	first, err := s.Create(validOrder())
	require.NoError(t, err)

	other := validOrder()
	other.SessionID = "sess-2"
	_, err = s.Create(other)
	require.NoError(t, err)

	orders, err := s.ListBySession("sess-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, first.OrderID, orders[0].OrderID)

	_, err = s.ListBySession("")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
