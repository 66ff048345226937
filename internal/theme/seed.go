package theme

import (
	"github.com/modacart/storefront-backend/internal/category"
	"github.com/modacart/storefront-backend/internal/coupon"
	"github.com/modacart/storefront-backend/internal/product"
)

// Seed bundles the starter data for one theme. The app binary inserts it
// when the corresponding tables are empty; the demo binary serves it
// directly from memory.
type Seed struct {
	Products   []product.Product
	Categories []category.Category
	Coupons    []coupon.Coupon
}

// SeedFor returns the seed data for a theme key, falling back to the
// fashion seed for unknown keys.
func SeedFor(key string) Seed {
	if s, ok := seeds[key]; ok {
		return s
	}
	return seeds["fashion"]
}

func ptrString(s string) *string { return &s }

var seeds = map[string]Seed{
	"fashion": {
		Categories: []category.Category{
			{CategoryID: 1, CategoryName: "Tops", CategoryImg: ptrString("/category/tops.jpg")},
			{CategoryID: 2, CategoryName: "Denim", CategoryImg: ptrString("/category/denim.jpg")},
			{CategoryID: 3, CategoryName: "Outerwear", CategoryImg: ptrString("/category/outerwear.jpg")},
			{CategoryID: 4, CategoryName: "Accessories", CategoryImg: ptrString("/category/accessories.jpg")},
		},
		Products: []product.Product{
			{ID: 1, Name: "Relaxed Linen Shirt", Description: "Breathable linen shirt in off-white", Price: 59, Images: []string{"/shopping/linen-shirt.jpg", "/shopping/linen-shirt-back.jpg"}, CategoryID: 1, Rating: 4.5},
			{ID: 2, Name: "Straight-Leg Jeans", Description: "Mid-rise straight jeans, rigid denim", Price: 89, Images: []string{"/shopping/straight-jeans.jpg"}, CategoryID: 2, Rating: 4.7},
			{ID: 3, Name: "Wool Overcoat", Description: "Double-faced wool overcoat in camel", Price: 249, Images: []string{"/shopping/wool-overcoat.jpg"}, CategoryID: 3, Rating: 4.8},
			{ID: 4, Name: "Ribbed Tank", Description: "Stretch-cotton ribbed tank", Price: 25, Images: []string{"/shopping/ribbed-tank.jpg"}, CategoryID: 1, Rating: 4.2},
			{ID: 5, Name: "Leather Belt", Description: "Full-grain leather belt, brass buckle", Price: 45, Images: []string{"/shopping/leather-belt.jpg"}, CategoryID: 4, Rating: 4.6},
			{ID: 6, Name: "Denim Jacket", Description: "Washed denim trucker jacket", Price: 119, Images: []string{"/shopping/denim-jacket.jpg"}, CategoryID: 2, Rating: 4.4},
			{ID: 7, Name: "Silk Scarf", Description: "Printed silk twill scarf", Price: 65, Images: []string{"/shopping/silk-scarf.jpg"}, CategoryID: 4, Rating: 4.3},
			{ID: 8, Name: "Cropped Blazer", Description: "Tailored cropped blazer in black", Price: 179, Images: []string{"/shopping/cropped-blazer.jpg"}, CategoryID: 3, Rating: 4.5},
		},
		Coupons: []coupon.Coupon{
			{Code: "WELCOME10", DiscountPercentage: 10, Description: "10% off your first order"},
			{Code: "SEASON20", DiscountPercentage: 20, Description: "20% off seasonal picks"},
			{Code: "VIP30", DiscountPercentage: 30, Description: "30% off for VIP members"},
		},
	},
	"electronics": {
		Categories: []category.Category{
			{CategoryID: 11, CategoryName: "Audio", CategoryImg: ptrString("/category/audio.jpg")},
			{CategoryID: 12, CategoryName: "Workspace", CategoryImg: ptrString("/category/workspace.jpg")},
			{CategoryID: 13, CategoryName: "Wearables", CategoryImg: ptrString("/category/wearables.jpg")},
			{CategoryID: 14, CategoryName: "Charging", CategoryImg: ptrString("/category/charging.jpg")},
		},
		Products: []product.Product{
			{ID: 101, Name: "Noise-Cancelling Headphones", Description: "Over-ear ANC headphones, 40h battery", Price: 299, Images: []string{"/shopping/anc-headphones.jpg"}, CategoryID: 11, Rating: 4.8},
			{ID: 102, Name: "Mechanical Keyboard", Description: "75% hot-swappable mechanical keyboard", Price: 129, Images: []string{"/shopping/mech-keyboard.jpg"}, CategoryID: 12, Rating: 4.6},
			{ID: 103, Name: "4K Monitor 27\"", Description: "27-inch 4K IPS monitor, USB-C", Price: 449, Images: []string{"/shopping/4k-monitor.jpg"}, CategoryID: 12, Rating: 4.7},
			{ID: 104, Name: "Smartwatch S2", Description: "GPS smartwatch with AMOLED display", Price: 219, Images: []string{"/shopping/smartwatch.jpg"}, CategoryID: 13, Rating: 4.4},
			{ID: 105, Name: "65W GaN Charger", Description: "Dual-port 65W GaN wall charger", Price: 39, Images: []string{"/shopping/gan-charger.jpg"}, CategoryID: 14, Rating: 4.5},
			{ID: 106, Name: "True Wireless Earbuds", Description: "In-ear buds with wireless charging case", Price: 149, Images: []string{"/shopping/tws-earbuds.jpg"}, CategoryID: 11, Rating: 4.3},
			{ID: 107, Name: "Laptop Stand", Description: "Aluminium adjustable laptop stand", Price: 49, Images: []string{"/shopping/laptop-stand.jpg"}, CategoryID: 12, Rating: 4.2},
			{ID: 108, Name: "Power Bank 20K", Description: "20,000 mAh power bank, 30W output", Price: 59, Images: []string{"/shopping/power-bank.jpg"}, CategoryID: 14, Rating: 4.4},
		},
		Coupons: []coupon.Coupon{
			{Code: "VOLT5", DiscountPercentage: 5, Description: "5% off everything"},
			{Code: "AUDIO15", DiscountPercentage: 15, Description: "15% off audio week"},
			{Code: "STUDENT12", DiscountPercentage: 12, Description: "12% student discount"},
		},
	},
}
