package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GetSessionIDFromCtx extracts the session id from the JWT the middleware
// stored in the request locals. Every cart, coupon, checkout and order
// route is keyed on this id.
func GetSessionIDFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	raw, ok := claims["session_id"]
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", fiber.ErrUnauthorized
	}
	return id, nil
}
