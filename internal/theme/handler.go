package theme

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the active theme so the storefront can render store name,
// banners and shipping copy without baking them into components.
type Handler struct {
	active Theme
}

func NewHandler(active Theme) *Handler {
	return &Handler{active: active}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/theme", h.getTheme)
}

func (h *Handler) getTheme(c *fiber.Ctx) error {
	return c.JSON(h.active)
}
