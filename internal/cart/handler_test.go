package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Session-ID"); v != "" {
			claims := jwt.MapClaims{"session_id": v}
			tok := &jwt.Token{Claims: claims}
			c.Locals("user", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestCartRoutes_Basic(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository()))
	app := makeAppWithCartHandler(handler)

	// ensure routes registered
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/v1/cart"] {
		t.Fatalf("expected route '/api/v1/cart' to be registered")
	}
	if !routes["/api/v1/cart/items"] {
		t.Fatalf("expected route '/api/v1/cart/items' to be registered")
	}

	// unauthorized access should be blocked
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add product with explicit quantity=2
	req2 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productID":3,"quantity":2}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-Session-ID", "sess-42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for adding to cart, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"quantity":2`) {
		t.Fatalf("expected quantity 2 in response, got %s", string(b2))
	}

	// add same product again, should increment quantity
	req3 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productID":3}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-Session-ID", "sess-42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for second add, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"quantity":3`) {
		t.Fatalf("expected quantity 3 after second add, got %s", string(b3))
	}

	// set quantity explicitly
	req4 := httptest.NewRequest("PUT", "/api/v1/cart/items/3", strings.NewReader(`{"quantity":1}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-Session-ID", "sess-42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for quantity update, got %d", res4.StatusCode)
	}
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), `"quantity":1`) {
		t.Fatalf("expected quantity 1 after update, got %s", string(b4))
	}

	// setting quantity to zero removes the line
	req5 := httptest.NewRequest("PUT", "/api/v1/cart/items/3", strings.NewReader(`{"quantity":0}`))
	req5.Header.Set("Content-Type", "application/json")
	req5.Header.Set("X-Session-ID", "sess-42")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for zero-quantity update, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if strings.Contains(string(b5), `"productID":3`) {
		t.Fatalf("expected product 3 removed at quantity zero, got %s", string(b5))
	}

	// negative quantity on add is rejected
	req6 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productID":3,"quantity":-1}`))
	req6.Header.Set("Content-Type", "application/json")
	req6.Header.Set("X-Session-ID", "sess-42")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for negative add, got %d", res6.StatusCode)
	}

	// clear the cart via DELETE endpoint
	req7 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productID":5,"quantity":2}`))
	req7.Header.Set("Content-Type", "application/json")
	req7.Header.Set("X-Session-ID", "sess-42")
	app.Test(req7)

	req8 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req8.Header.Set("X-Session-ID", "sess-42")
	res8, _ := app.Test(req8)
	if res8.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear cart, got %d", res8.StatusCode)
	}

	req9 := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req9.Header.Set("X-Session-ID", "sess-42")
	res9, _ := app.Test(req9)
	if res9.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 after clearing, got %d", res9.StatusCode)
	}
	b9, _ := io.ReadAll(res9.Body)
	if strings.Contains(string(b9), "productID") {
		t.Fatalf("expected empty cart after clear, got %s", string(b9))
	}
}
