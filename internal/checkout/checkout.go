package checkout

// Step indexes the linear checkout flow. There is no skipping: customer
// info, then shipping address, then payment.
type Step int

const (
	StepCustomerInfo Step = 1
	StepShipping     Step = 2
	StepPayment      Step = 3
)

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type ShippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Payment struct {
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVC            string `json:"cvc"`
}

// Draft is the in-progress, unsubmitted checkout for one session. It is
// transient: abandoned drafts vanish with the session, submitted drafts are
// cleared only after the order is acknowledged.
type Draft struct {
	Customer CustomerInfo    `json:"customer"`
	Shipping ShippingAddress `json:"shipping"`
	Payment  Payment         `json:"payment"`
	Step     Step            `json:"step"`
}
