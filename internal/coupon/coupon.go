package coupon

// Coupon grants a percentage discount on the cart subtotal. Codes are
// matched case-sensitively against the rule table.
type Coupon struct {
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Description        string  `json:"description,omitempty"`
}
