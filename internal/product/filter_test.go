package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Wool Overcoat", Price: 300, CategoryID: 3, Rating: 4.8},
		{ID: 2, Name: "Ribbed Tank", Price: 100, CategoryID: 1, Rating: 4.2},
		{ID: 3, Name: "Denim Jacket", Price: 200, CategoryID: 2, Rating: 4.4},
	}
}

func TestFilterSort_NoFilterPreservesCatalogOrder(t *testing.T) {
	catalog := sampleCatalog()
	out := FilterSort(catalog, Filter{})
	assert.Equal(t, catalog, out, "category \"all\" with no filters returns the catalog unchanged")
}

func TestFilterSort_DoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	FilterSort(catalog, Filter{Sort: SortPriceAsc})
	assert.Equal(t, sampleCatalog(), catalog)
}

func TestFilterSort_PriceAscending(t *testing.T) {
	out := FilterSort(sampleCatalog(), Filter{Sort: SortPriceAsc})
	prices := []float64{out[0].Price, out[1].Price, out[2].Price}
	assert.Equal(t, []float64{100, 200, 300}, prices)
}

func TestFilterSort_StableOnEqualKeys(t *testing.T) {
	catalog := []Product{
		{ID: 1, Name: "A", Price: 50},
		{ID: 2, Name: "B", Price: 50},
		{ID: 3, Name: "C", Price: 50},
	}
	out := FilterSort(catalog, Filter{Sort: SortPriceAsc})
	require.Len(t, out, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].ID, out[1].ID, out[2].ID}, "equal prices keep catalog order")
}

func TestFilterSort_NameSortIsCaseInsensitive(t *testing.T) {
	catalog := []Product{
		{ID: 1, Name: "zip hoodie"},
		{ID: 2, Name: "Anorak"},
		{ID: 3, Name: "beanie"},
	}
	out := FilterSort(catalog, Filter{Sort: SortNameAsc})
	assert.Equal(t, []int{2, 3, 1}, []int{out[0].ID, out[1].ID, out[2].ID})
}

func TestFilterSort_RatingDescending(t *testing.T) {
	out := FilterSort(sampleCatalog(), Filter{Sort: SortRatingDesc})
	assert.Equal(t, 4.8, out[0].Rating)
	assert.Equal(t, 4.2, out[2].Rating)
}

func TestFilterSort_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	out := FilterSort(sampleCatalog(), Filter{Search: "denim"})
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)

	out = FilterSort(sampleCatalog(), Filter{Search: "  JACKET "})
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}

func TestFilterSort_CategoryEquality(t *testing.T) {
	out := FilterSort(sampleCatalog(), Filter{CategoryID: 2})
	require.Len(t, out, 1)
	assert.Equal(t, "Denim Jacket", out[0].Name)
}

func TestFilterSort_InclusivePriceRange(t *testing.T) {
	out := FilterSort(sampleCatalog(), Filter{MinPrice: 100, MaxPrice: 200})
	require.Len(t, out, 2, "bounds are inclusive")
}

func TestFilterSort_NegativeBoundsClamped(t *testing.T) {
	out := FilterSort(sampleCatalog(), Filter{MinPrice: -10, MaxPrice: -5})
	assert.Len(t, out, 3, "negative bounds clamp to zero (no upper bound) instead of filtering everything out")
}
