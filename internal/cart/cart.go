package cart

import "sort"

// Line is one (product, quantity) pair in a shopping cart. A cart holds at
// most one line per product; quantities are always positive while a line
// exists.
type Line struct {
	ProductID int `json:"productID"`
	Quantity  int `json:"quantity"`
}

// linesFromMap flattens the stored quantity map into lines sorted by
// product id, so responses are deterministic.
func linesFromMap(items map[int]int) []Line {
	out := make([]Line, 0, len(items))
	for pid, q := range items {
		out = append(out, Line{ProductID: pid, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
