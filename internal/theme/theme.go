package theme

// A Theme is a complete, swappable storefront profile. Everything that
// varies per deployment (store name, shipping rules, hero banners, the
// seeded catalog and coupon table) lives here as explicit configuration,
// so every page and endpoint reads the same values instead of scattering
// literals.
type Theme struct {
	Key                   string   `json:"key"`
	StoreName             string   `json:"storeName"`
	Tagline               string   `json:"tagline,omitempty"`
	Currency              string   `json:"currency"`
	FreeShippingThreshold float64  `json:"freeShippingThreshold"`
	FlatShippingFee       float64  `json:"flatShippingFee"`
	Banners               []Banner `json:"banners,omitempty"`
}

// Banner is a hero/banner slot on the storefront home page.
type Banner struct {
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// Get returns the theme registered under key, falling back to the fashion
// theme for unknown keys.
func Get(key string) Theme {
	if t, ok := registry[key]; ok {
		return t
	}
	return registry["fashion"]
}

// Keys lists the registered theme keys.
func Keys() []string {
	return []string{"fashion", "electronics"}
}

var registry = map[string]Theme{
	"fashion": {
		Key:                   "fashion",
		StoreName:             "Mode & Cart",
		Tagline:               "Minimal pieces, maximal wardrobe",
		Currency:              "USD",
		FreeShippingThreshold: 200,
		FlatShippingFee:       25,
		Banners: []Banner{
			{Image: "/banner/fashion-hero.jpg", Link: "/products?sort=rating", Alt: "New season essentials"},
			{Image: "/banner/fashion-denim.jpg", Link: "/products?category=2", Alt: "Denim refresh"},
		},
	},
	"electronics": {
		Key:                   "electronics",
		StoreName:             "Voltline",
		Tagline:               "Gear that keeps up",
		Currency:              "USD",
		FreeShippingThreshold: 500,
		FlatShippingFee:       15,
		Banners: []Banner{
			{Image: "/banner/electronics-hero.jpg", Link: "/products?sort=price-asc", Alt: "Audio week deals"},
			{Image: "/banner/electronics-desk.jpg", Link: "/products?category=12", Alt: "Desk setups"},
		},
	},
}
