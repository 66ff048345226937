package pricing

import (
	"github.com/sirupsen/logrus"

	"github.com/modacart/storefront-backend/internal/cart"
	"github.com/modacart/storefront-backend/internal/coupon"
	"github.com/modacart/storefront-backend/internal/product"
	"github.com/modacart/storefront-backend/internal/theme"
)

// SummaryLine is a cart line resolved against the catalog for display.
type SummaryLine struct {
	Product   product.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"lineTotal"`
}

// Summary is the cart page payload: resolved lines, the active coupon and
// the price breakdown. Empty lets the storefront render its explicit
// empty-cart state instead of a zeroed summary.
type Summary struct {
	Empty   bool           `json:"empty"`
	Items   []SummaryLine  `json:"items"`
	Coupon  *coupon.Coupon `json:"coupon,omitempty"`
	Pricing Quote          `json:"pricing"`
}

// Service composes cart contents, the catalog, the applied coupon and the
// active theme's shipping rules into a Summary.
type Service struct {
	carts    cart.ServiceInterface
	products product.ServiceInterface
	coupons  coupon.ServiceInterface
	active   theme.Theme
}

func NewService(carts cart.ServiceInterface, products product.ServiceInterface, coupons coupon.ServiceInterface, active theme.Theme) *Service {
	return &Service{carts: carts, products: products, coupons: coupons, active: active}
}

func (s *Service) Summary(sessionID string) (Summary, error) {
	lines, err := s.carts.Get(sessionID)
	if err != nil {
		return Summary{}, err
	}
	if len(lines) == 0 {
		return Summary{Empty: true, Items: []SummaryLine{}}, nil
	}

	ids := make([]int, 0, len(lines))
	for _, ln := range lines {
		ids = append(ids, ln.ProductID)
	}
	resolvedProducts, err := s.products.ListByIDs(ids)
	if err != nil {
		return Summary{}, err
	}
	byID := make(map[int]product.Product, len(resolvedProducts))
	for _, p := range resolvedProducts {
		byID[p.ID] = p
	}

	items := make([]SummaryLine, 0, len(lines))
	for _, ln := range lines {
		p, ok := byID[ln.ProductID]
		if !ok {
			// data-integrity warning: the cart references a product the
			// catalog no longer knows; the line is dropped from totals
			logrus.WithFields(logrus.Fields{
				"sessionID": sessionID,
				"productID": ln.ProductID,
			}).Warn("pricing: cart line references unknown product, dropping from totals")
			continue
		}
		items = append(items, SummaryLine{
			Product:   p,
			Quantity:  ln.Quantity,
			LineTotal: Round2(float64(ln.Quantity) * p.Price),
		})
	}
	if len(items) == 0 {
		return Summary{Empty: true, Items: []SummaryLine{}}, nil
	}

	var applied *coupon.Coupon
	if c, ok := s.coupons.Active(sessionID); ok {
		applied = &c
	}

	quote := Calculate(lines, func(id int) (float64, bool) {
		p, ok := byID[id]
		if !ok {
			return 0, false
		}
		return p.Price, true
	}, applied, s.active.FreeShippingThreshold, s.active.FlatShippingFee)

	return Summary{
		Items:   items,
		Coupon:  applied,
		Pricing: quote.Rounded(),
	}, nil
}
