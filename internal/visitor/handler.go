package visitor

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
)

type Handler struct {
	issuer *Issuer
}

func NewHandler(issuer *Issuer) *Handler {
	return &Handler{issuer: issuer}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/visitor", h.createVisitor)
}

func (h *Handler) createVisitor(c *fiber.Ctx) error {
	id, token, err := h.issuer.Issue()
	if err != nil {
		logger.LogErr(err, "visitor token not issued")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"visitorId": id,
		"token":     token,
	})
}
