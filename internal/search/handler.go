package search

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	"github.com/wichananm65/plant-shop/internal/dom"
	"github.com/wichananm65/plant-shop/internal/visitor"
)

// PageSource returns the server-rendered markup for a URL path.
type PageSource interface {
	Page(path string) (string, bool)
}

// Handler exposes the search filter over HTTP. Every request gets its own
// document and controller, and renders without delay.
type Handler struct {
	catalog     Catalog
	pages       PageSource
	listingPath string
	recorderFor func(visitorID string) Recorder
}

func NewHandler(catalog Catalog, pages PageSource, listingPath string) *Handler {
	return &Handler{catalog: catalog, pages: pages, listingPath: listingPath}
}

// WithRecorders sets how a visitor's search terms are stored.
func (h *Handler) WithRecorders(f func(visitorID string) Recorder) *Handler {
	h.recorderFor = f
	return h
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/search", h.search)
	app.Post("/api/v1/search/events", h.event)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/visitor/search", h.visitorSearch)
}

type searchRequest struct {
	Query string `json:"query"`
	Path  string `json:"path"`
	// HTML is an optional snapshot of the visitor's page. Without it the
	// server page for Path is used.
	HTML string `json:"html"`
}

type eventRequest struct {
	Path  string `json:"path"`
	HTML  string `json:"html"`
	Type  string `json:"type"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type searchResponse struct {
	Outcome
	HTML string `json:"html"`
}

func (h *Handler) search(c *fiber.Ctx) error {
	req := new(searchRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	ctrl, err := h.controller(req.Path, req.HTML)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.run(ctrl, req.Query))
}

// visitorSearch performs the store action for the visitor before searching.
func (h *Handler) visitorSearch(c *fiber.Ctx) error {
	visitorID, err := visitor.GetVisitorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	req := new(searchRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var opts []Option
	if h.recorderFor != nil {
		opts = append(opts, WithRecorder(h.recorderFor(visitorID)))
	}
	ctrl, err := h.controller(req.Path, req.HTML, opts...)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	ctrl.HandleInput(req.Query)
	ctrl.StoreData()
	return c.JSON(h.run(ctrl, req.Query))
}

func (h *Handler) event(c *fiber.Ctx) error {
	req := new(eventRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	ctrl, err := h.controller(req.Path, req.HTML)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var out Outcome
	switch req.Type {
	case "keydown", "keypress":
		out = ctrl.HandleKey(req.Key, req.Value)
		if out.Mode != ModeNone {
			out = ctrl.Last()
		}
	case "input":
		ctrl.HandleInput(req.Value)
	case "hidden":
		ctrl.HandleOverlayHidden()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown event type"})
	}
	return c.JSON(searchResponse{Outcome: out, HTML: ctrl.Render()})
}

func (h *Handler) run(ctrl *Controller, query string) searchResponse {
	out := ctrl.Search(query)
	if out.Mode != ModeNone {
		// zero delays: the render already happened
		out = ctrl.Last()
	}
	return searchResponse{Outcome: out, HTML: ctrl.ResultsHTML()}
}

func (h *Handler) controller(path, markup string, opts ...Option) (*Controller, error) {
	if path == "" {
		path = "/"
	}
	doc, err := h.document(path, markup)
	if err != nil {
		logger.LogErr(err, "search page not parsed")
		return nil, err
	}
	opts = append([]Option{WithOptions(Options{ListingPath: h.listingPath})}, opts...)
	return NewController(doc, path, h.catalog, opts...), nil
}

func (h *Handler) document(path, markup string) (*dom.Document, error) {
	if markup != "" {
		return dom.ParseString(markup)
	}
	if h.pages != nil {
		if page, ok := h.pages.Page(path); ok {
			return dom.ParseString(page)
		}
	}
	return dom.Empty(), nil
}
