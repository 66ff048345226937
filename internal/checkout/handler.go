package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modacart/storefront-backend/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/checkout", h.getDraft)
	app.Put("/api/v1/checkout", h.updateDraft)
	app.Post("/api/v1/checkout/next", h.next)
	app.Post("/api/v1/checkout/prev", h.prev)
	app.Post("/api/v1/checkout/submit", h.submit)
}

func (h *Handler) getDraft(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.Draft(sessionID))
}

func (h *Handler) updateDraft(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(UpdateSections)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.Update(sessionID, *payload))
}

func (h *Handler) next(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	draft, err := h.service.Next(sessionID)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ve.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(draft)
}

func (h *Handler) prev(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.Prev(sessionID))
}

func (h *Handler) submit(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Submit(sessionID)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ve.Fields})
		case errors.Is(err, ErrSubmitInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrNotAtPayment), errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			// submission failed downstream; the draft is preserved so the
			// client can retry
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error(), "retryable": true})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
