package order

// Statuses an order moves through. Only "created" is assigned here; later
// transitions belong to fulfilment, which this service does not own.
const (
	StatusCreated = "created"
)

// Order is a submitted checkout: the cart snapshot keyed by product id
// (stringified for jsonb storage), the price breakdown frozen at submission
// time and the customer/shipping details from the checkout draft.
type Order struct {
	OrderID   string         `json:"orderID"`
	SessionID string         `json:"sessionID"`
	Cart      map[string]int `json:"cart"`
	Quantity  int            `json:"quantity"`

	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	ShippingPrice float64 `json:"shippingPrice"`
	GrandPrice    float64 `json:"grandPrice"`
	CouponCode    string  `json:"couponCode,omitempty"`

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	ShippingAddress string `json:"shippingAddress"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
