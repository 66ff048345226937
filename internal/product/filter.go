package product

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by FilterSort. An unknown key leaves catalog order.
const (
	SortNameAsc    = "name"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating"
)

// Filter describes a storefront product view: free-text search, category
// selection and price bounds. CategoryID 0 means "all categories"; a
// MaxPrice of 0 means no upper bound.
type Filter struct {
	Search     string
	CategoryID int
	MinPrice   float64
	MaxPrice   float64
	Sort       string
}

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// FilterSort returns a filtered, sorted view of the catalog snapshot.
// The input slice is never mutated and products with equal sort keys keep
// their catalog order. Negative price bounds are clamped to zero.
func FilterSort(products []Product, f Filter) []Product {
	minPrice := f.MinPrice
	if minPrice < 0 {
		minPrice = 0
	}
	maxPrice := f.MaxPrice
	if maxPrice < 0 {
		maxPrice = 0
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if p.Price < minPrice {
			continue
		}
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
