package product

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)

	// dev-only endpoint to reset products, enabled when ALLOW_RESET_PRODUCTS=1
	app.Post("/dev/reset-products", h.resetProducts)
}

// getProducts lists the catalog, optionally narrowed with ?category=indoor,herbs.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.ListByCategory(SplitTags(c.Query("category"))...))
}

// resetProducts replaces the catalog with the posted list. A missing or
// unparsable body re-seeds the static catalog; an explicit empty array clears it.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_PRODUCTS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var products []Product
	if err := c.BodyParser(&products); err != nil {
		products = Catalog()
	}

	if ves := validateProducts(products); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	if err := h.service.ResetProducts(products); err != nil {
		logger.LogErr(err, "product reset failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	logger.Info("Catalog reset", "count", len(products))
	return c.JSON(products)
}

// validateProducts returns one message per invalid record, keyed by its position.
func validateProducts(products []Product) map[string]string {
	errs := map[string]string{}
	for i, p := range products {
		switch {
		case strings.TrimSpace(p.Name) == "":
			errs[strconv.Itoa(i)] = "name is required"
		case strings.TrimSpace(p.ID) == "":
			errs[strconv.Itoa(i)] = "id (category tag) is required"
		}
	}
	return errs
}

// SplitTags parses a comma separated category filter.
func SplitTags(raw string) []string {
	out := make([]string, 0)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
