package search

import (
	"strings"
	"sync"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/wichananm65/plant-shop/internal/dom"
	"github.com/wichananm65/plant-shop/internal/product"
)

// Page markup contract.
const (
	ItemClass    = "product-item"
	ResultID     = "result"
	InputID      = "search-input"
	OverlayID    = "offcanvasTop"
	ActiveClass  = "search-active"
	resultClass  = "row g-4 mt-3"
	loadingClass = "loading"
)

const (
	DefaultSearchDelay   = 300 * time.Millisecond
	DefaultRedirectDelay = 500 * time.Millisecond
)

// Catalog supplies the records used by catalog-render mode.
type Catalog interface {
	List() []product.Product
}

// Scheduler runs f after d. Callbacks are fire-and-forget.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Navigator performs the redirect-mode navigation.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// Recorder persists the raw search input (the "store" action).
type Recorder interface {
	RecordSearchTerm(value string)
}

// Options tune a Controller. Zero delays render inline.
type Options struct {
	ListingPath   string
	SearchDelay   time.Duration
	RedirectDelay time.Duration
}

// DefaultOptions are the browser timings: a short loading state before
// results, a slightly longer one before redirecting.
func DefaultOptions() Options {
	return Options{
		ListingPath:   DefaultListingPath,
		SearchDelay:   DefaultSearchDelay,
		RedirectDelay: DefaultRedirectDelay,
	}
}

// Outcome describes one search invocation.
type Outcome struct {
	Mode     Mode   `json:"mode"`
	Query    string `json:"query"`
	Redirect string `json:"redirect,omitempty"`
	// Matches is only meaningful once the render has run, see Controller.Last.
	Matches int `json:"matches"`
}

// Controller runs the search filter against one page. The mutex stands in
// for the browser's single UI thread: event handlers and timer callbacks
// never touch the document concurrently.
type Controller struct {
	mu       sync.Mutex
	doc      *dom.Document
	path     string
	catalog  Catalog
	opts     Options
	sched    Scheduler
	nav      Navigator
	recorder Recorder
	last     Outcome
}

// Option configures a Controller.
type Option func(*Controller)

func WithOptions(o Options) Option { return func(c *Controller) { c.opts = o } }

func WithScheduler(s Scheduler) Option { return func(c *Controller) { c.sched = s } }

func WithNavigator(n Navigator) Option { return func(c *Controller) { c.nav = n } }

func WithRecorder(r Recorder) Option { return func(c *Controller) { c.recorder = r } }

// NewController binds the search to doc, viewed at URL path.
func NewController(doc *dom.Document, path string, catalog Catalog, opts ...Option) *Controller {
	c := &Controller{
		doc:     doc,
		path:    path,
		catalog: catalog,
		opts:    DefaultOptions(),
		sched:   timerScheduler{},
	}
	for _, o := range opts {
		o(c)
	}
	if c.opts.ListingPath == "" {
		c.opts.ListingPath = DefaultListingPath
	}
	return c
}

// Search runs the filter for raw. A query that is empty after trimming
// returns ModeNone and leaves the page untouched.
func (c *Controller) Search(raw string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search(raw)
}

// SearchInput searches with the current value of the search field.
func (c *Controller) SearchInput() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search(c.inputValue())
}

// Last returns the outcome of the most recently completed render.
func (c *Controller) Last() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// HandleKey triggers a search with value when key is Enter.
func (c *Controller) HandleKey(key, value string) Outcome {
	if key != "Enter" {
		return Outcome{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if input := c.doc.ElementByID(InputID); input != nil {
		input.SetValue(value)
	}
	return c.search(value)
}

// HandleInput tracks the field value and resets the results once it is blank.
func (c *Controller) HandleInput(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if input := c.doc.ElementByID(InputID); input != nil {
		input.SetValue(value)
	}
	if strings.TrimSpace(value) != "" {
		return
	}
	c.resetResults()
	if overlay := c.doc.ElementByID(OverlayID); overlay != nil {
		overlay.RemoveClass(ActiveClass)
	}
}

// HandleOverlayHidden clears everything the search left behind so a reopened
// overlay starts empty.
func (c *Controller) HandleOverlayHidden() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if overlay := c.doc.ElementByID(OverlayID); overlay != nil {
		overlay.RemoveClass(ActiveClass)
	}
	c.resetResults()
	if input := c.doc.ElementByID(InputID); input != nil {
		input.SetValue("")
	}
}

// StoreData hands the raw field value to the recorder, if one is configured.
func (c *Controller) StoreData() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.recorder == nil {
		return
	}
	c.recorder.RecordSearchTerm(c.inputValue())
}

// Render returns the whole document as HTML.
func (c *Controller) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.String()
}

// ResultsHTML returns the markup of the results container, or "" without one.
func (c *Controller) ResultsHTML() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if result := c.doc.ElementByID(ResultID); result != nil {
		return result.InnerHTML()
	}
	return ""
}

func (c *Controller) search(raw string) Outcome {
	query := strings.TrimSpace(raw)
	if query == "" {
		return Outcome{Mode: ModeNone}
	}

	items := c.doc.ElementsByClass(ItemClass)
	if overlay := c.doc.ElementByID(OverlayID); overlay != nil {
		overlay.AddClass(ActiveClass)
	}
	if result := c.doc.ElementByID(ResultID); result != nil {
		result.SetClassName(resultClass + " " + loadingClass)
		result.Clear()
	}

	out := Outcome{Mode: ResolveMode(len(items) > 0, c.path), Query: query}
	logger.Debug("Search resolved", "mode", out.Mode.String(), "path", c.path, "query", query)

	switch out.Mode {
	case ModeListing:
		cands := make([]Card, 0, len(items))
		for _, el := range items {
			cands = append(cands, itemCandidate{el: el})
		}
		c.schedule(c.opts.SearchDelay, func() { c.render(out, cands) })
	case ModeCatalog:
		c.schedule(c.opts.SearchDelay, func() { c.render(out, c.catalogCandidates()) })
	case ModeRedirect:
		out.Redirect = RedirectTarget(c.opts.ListingPath, query)
		c.schedule(c.opts.RedirectDelay, func() {
			c.last = out
			if c.nav != nil {
				c.nav.Navigate(out.Redirect)
			}
		})
	}
	return out
}

// schedule runs f with the lock held, inline when d is not positive.
func (c *Controller) schedule(d time.Duration, f func()) {
	if d <= 0 {
		f()
		return
	}
	c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		f()
	})
}

func (c *Controller) catalogCandidates() []Card {
	if c.catalog == nil {
		return nil
	}
	records := c.catalog.List()
	out := make([]Card, 0, len(records))
	for _, p := range records {
		out = append(out, recordCandidate{p: p})
	}
	return out
}

func (c *Controller) inputValue() string {
	if input := c.doc.ElementByID(InputID); input != nil {
		return input.Value()
	}
	return ""
}

func (c *Controller) resetResults() {
	if result := c.doc.ElementByID(ResultID); result != nil {
		result.Clear()
		result.SetClassName(resultClass)
	}
}
