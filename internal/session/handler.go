package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Handler issues anonymous storefront sessions. Shoppers do not sign in;
// the cart, applied coupon and checkout draft all hang off the session id
// carried in the token.
type Handler struct {
	secret []byte
	ttl    time.Duration
}

func NewHandler(secret string, ttl time.Duration) *Handler {
	return &Handler{secret: []byte(secret), ttl: ttl}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/session", h.createSession)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(h.ttl)

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"sessionID": sessionID,
		"token":     signed,
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
	})
}
