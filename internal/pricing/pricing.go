package pricing

import (
	"math"

	"github.com/modacart/storefront-backend/internal/cart"
	"github.com/modacart/storefront-backend/internal/coupon"
)

// Quote is the price breakdown derived from a cart:
// total = subtotal - discount + shipping.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Calculate derives a quote from cart lines. resolve maps a product id to
// its unit price; lines that do not resolve are skipped so a stale cart can
// never break pricing (callers are expected to log them). Shipping is
// waived only when the subtotal strictly exceeds threshold; a subtotal
// exactly at the threshold still pays the flat fee. An empty or fully
// unresolved cart prices to zero, including shipping.
//
// No rounding happens here; accumulate in full precision and round with
// Round2 at display time.
func Calculate(lines []cart.Line, resolve func(productID int) (float64, bool), applied *coupon.Coupon, threshold, flatFee float64) Quote {
	var q Quote
	resolved := 0
	for _, ln := range lines {
		price, ok := resolve(ln.ProductID)
		if !ok {
			continue
		}
		resolved++
		q.Subtotal += float64(ln.Quantity) * price
	}
	if resolved == 0 {
		return Quote{}
	}

	if applied != nil {
		q.Discount = q.Subtotal * applied.DiscountPercentage / 100
	}
	if q.Subtotal <= threshold {
		q.Shipping = flatFee
	}
	q.Total = q.Subtotal - q.Discount + q.Shipping
	return q
}

// Round2 rounds a money value to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a display copy of the quote with every value rounded.
func (q Quote) Rounded() Quote {
	return Quote{
		Subtotal: Round2(q.Subtotal),
		Discount: Round2(q.Discount),
		Shipping: Round2(q.Shipping),
		Total:    Round2(q.Total),
	}
}
