package category

// Category is the public DTO returned by the category API.
type Category struct {
	CategoryID   int     `json:"categoryID"`
	CategoryName string  `json:"categoryName"`
	CategoryImg  *string `json:"categoryImg,omitempty"`
}
