package storage

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	"github.com/wichananm65/plant-shop/internal/visitor"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/storage/:key", h.getItem)
	app.Put("/api/v1/storage/:key", h.setItem)
}

type setItemRequest struct {
	Value string `json:"value"`
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	owner, err := visitor.GetVisitorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	v, err := h.service.Get(owner, c.Params("key"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not found"})
		}
		logger.LogErr(err, "storage read failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"key": c.Params("key"), "value": v})
}

// setItem mirrors localStorage.setItem: an unavailable store is not an error.
func (h *Handler) setItem(c *fiber.Ctx) error {
	owner, err := visitor.GetVisitorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(setItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Set(owner, c.Params("key"), payload.Value); err != nil {
		logger.LogErr(err, "storage write failed")
	}
	return c.JSON(fiber.Map{"key": c.Params("key"), "stored": h.service.Available()})
}
