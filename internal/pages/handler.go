package pages

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	"github.com/wichananm65/plant-shop/internal/category"
	"github.com/wichananm65/plant-shop/internal/dom"
	"github.com/wichananm65/plant-shop/internal/product"
	"github.com/wichananm65/plant-shop/internal/search"
)

// Handler serves the home and listing pages.
type Handler struct {
	products    *product.Service
	categories  *category.Service
	catalog     search.Catalog
	listingPath string
}

// NewHandler builds the page handler. catalog feeds searches run while
// reading back a ?search= query.
func NewHandler(products *product.Service, categories *category.Service, catalog search.Catalog, listingPath string) *Handler {
	if listingPath == "" {
		listingPath = search.DefaultListingPath
	}
	return &Handler{
		products:    products,
		categories:  categories,
		catalog:     catalog,
		listingPath: strings.TrimPrefix(listingPath, "/"),
	}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/", h.getHome)
	app.Get("/"+search.DefaultDocument, h.getHome)
	app.Get("/"+h.listingPath, h.getShop)
}

// Page returns the unfiltered markup served at path.
func (h *Handler) Page(path string) (string, bool) {
	switch strings.TrimPrefix(path, "/") {
	case "", search.DefaultDocument:
		return h.home(), true
	case h.listingPath:
		return h.shop(nil), true
	}
	return "", false
}

func (h *Handler) home() string {
	return Layout("Plant Shop", h.listingPath, HomeContent{
		ListingPath: h.listingPath,
		Categories:  h.categories.List(0),
	})
}

func (h *Handler) shop(tags []string) string {
	active := ""
	if len(tags) == 1 {
		active = tags[0]
	}
	return Layout("Shop | Plant Shop", h.listingPath, ShopContent{
		ListingPath: h.listingPath,
		Categories:  h.categories.List(0),
		Active:      active,
		Products:    h.products.ListByCategory(tags...),
	})
}

func (h *Handler) getHome(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(h.home())
}

// getShop renders the listing page. A ?search= value is read back into the
// search field and the listing is filtered as if the visitor had searched.
func (h *Handler) getShop(c *fiber.Ctx) error {
	markup := h.shop(product.SplitTags(c.Query("category")))

	if raw := c.Query(search.QueryParam); strings.TrimSpace(raw) != "" {
		filtered, err := h.readBack(markup, c.Path(), raw)
		if err != nil {
			logger.LogErr(err, "search read-back failed")
		} else {
			markup = filtered
		}
	}

	c.Type("html")
	return c.SendString(markup)
}

func (h *Handler) readBack(markup, path, raw string) (string, error) {
	doc, err := dom.ParseString(markup)
	if err != nil {
		return "", err
	}
	ctrl := search.NewController(doc, path, h.catalog,
		search.WithOptions(search.Options{ListingPath: h.listingPath}))
	ctrl.HandleInput(raw)
	ctrl.SearchInput()
	return ctrl.Render(), nil
}
