package coupon

import (
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
	app.Get("/api/v1/cart/coupon", h.getCoupon)
	app.Post("/api/v1/cart/coupon", h.applyCoupon)
	app.Delete("/api/v1/cart/coupon", h.removeCoupon)
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *Handler) applyCoupon(c *fiber.Ctx) error {
	payload := new(applyCouponRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	applied, ok := h.service.Apply(sessionID, payload.Code)
	if !ok {
		// rejection is part of the normal flow; the storefront shows this
		// message inline next to the coupon input
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "invalid or expired code"})
	}
	return c.JSON(applied)
}

func (h *Handler) removeCoupon(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	h.service.Remove(sessionID)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) getCoupon(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	applied, ok := h.service.Active(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no coupon applied"})
	}
	return c.JSON(applied)
}
