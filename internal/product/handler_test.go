package product

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seedHandler() *Handler {
	seed := []Product{
		{ID: 1, Name: "Wool Overcoat", Price: 300, CategoryID: 3, Rating: 4.8},
		{ID: 2, Name: "Ribbed Tank", Price: 100, CategoryID: 1, Rating: 4.2},
		{ID: 3, Name: "Denim Jacket", Price: 200, CategoryID: 2, Rating: 4.4},
	}
	return NewHandler(NewService(NewInMemoryRepository(seed)))
}

func TestGetProducts_FilterAndSortViaQuery(t *testing.T) {
	app := fiber.New()
	seedHandler().RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/products?sort=price-asc", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if strings.Index(body, "Ribbed Tank") > strings.Index(body, "Wool Overcoat") {
		t.Fatalf("expected price-ascending order, got %s", body)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/products?category=2", nil)
	res2, _ := app.Test(req2)
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "Denim Jacket") || strings.Contains(string(b2), "Ribbed Tank") {
		t.Fatalf("category filter leaked products: %s", string(b2))
	}

	req3 := httptest.NewRequest("GET", "/api/v1/products?search=overcoat", nil)
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), "Wool Overcoat") || strings.Contains(string(b3), "Denim Jacket") {
		t.Fatalf("search filter failed: %s", string(b3))
	}

	// category=all behaves like no category filter
	req4 := httptest.NewRequest("GET", "/api/v1/products?category=all", nil)
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for category=all, got %d", res4.StatusCode)
	}

	req5 := httptest.NewRequest("GET", "/api/v1/products?minPrice=abc", nil)
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed minPrice, got %d", res5.StatusCode)
	}
}

func TestGetProduct_ByID(t *testing.T) {
	app := fiber.New()
	seedHandler().RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/product/2", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Ribbed Tank") {
		t.Fatalf("unexpected body: %s", string(b))
	}

	req2 := httptest.NewRequest("GET", "/api/v1/product/999", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res2.StatusCode)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	app := fiber.New()
	h := seedHandler()
	h.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"productName":"","productPrice":-5,"rating":9}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	for _, field := range []string{"productName", "productPrice", "rating"} {
		if !strings.Contains(string(b), field) {
			t.Fatalf("expected %s validation error, got %s", field, string(b))
		}
	}

	req2 := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"productName":"Silk Scarf","productPrice":65,"categoryID":4,"rating":4.3}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res2.StatusCode)
	}
}
