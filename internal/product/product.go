package product

// Product is a single catalog item. The catalog owns product data; carts and
// orders only reference products by id. JSON tags follow the camelCase
// convention used elsewhere in the project.
type Product struct {
	ID          int      `json:"productID"`
	Name        string   `json:"productName"`
	Description string   `json:"productDesc,omitempty"`
	Price       float64  `json:"productPrice"`
	Images      []string `json:"images,omitempty"`
	CategoryID  int      `json:"categoryID"`
	Rating      float64  `json:"rating"`
	CreatedAt   *string  `json:"createdAt,omitempty"`
	UpdatedAt   *string  `json:"updatedAt,omitempty"`
}

// PrimaryImage returns the first image or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
