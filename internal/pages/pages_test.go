package pages

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/plant-shop/internal/category"
	"github.com/wichananm65/plant-shop/internal/dom"
	"github.com/wichananm65/plant-shop/internal/product"
	"github.com/wichananm65/plant-shop/internal/search"
)

func newTestHandler() *Handler {
	products := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog))
	return NewHandler(products, category.NewService(products), products, "shop.html")
}

func get(t *testing.T, app *fiber.App, target string) (int, *dom.Document) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	doc, err := dom.ParseString(string(body))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return res.StatusCode, doc
}

func newPagesApp() *fiber.App {
	app := fiber.New()
	newTestHandler().RegisterPublicRoutes(app)
	return app
}

func TestPageRoutes_Registered(t *testing.T) {
	app := newPagesApp()
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	for _, p := range []string{"/", "/index.html", "/shop.html"} {
		if !routes[p] {
			t.Fatalf("expected route %q to be registered", p)
		}
	}
}

func TestHomePage_HasOverlayAndNoItems(t *testing.T) {
	markup, ok := newTestHandler().Page("/")
	if !ok {
		t.Fatal("expected home page")
	}
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, id := range []string{search.OverlayID, search.InputID, search.ResultID} {
		if doc.ElementByID(id) == nil {
			t.Fatalf("expected #%s on home page", id)
		}
	}
	if n := len(doc.ElementsByClass(search.ItemClass)); n != 0 {
		t.Fatalf("home page must not carry product items, got %d", n)
	}
	if !strings.Contains(markup, "shop.html?category=succulents") {
		t.Fatalf("expected category links on home page")
	}
}

func TestShopPage_ItemsCarryFields(t *testing.T) {
	markup, ok := newTestHandler().Page("/shop.html")
	if !ok {
		t.Fatal("expected shop page")
	}
	doc, _ := dom.ParseString(markup)
	items := doc.ElementsByClass(search.ItemClass)
	if len(items) != len(product.DefaultCatalog) {
		t.Fatalf("expected %d items, got %d", len(product.DefaultCatalog), len(items))
	}
	first := items[0]
	if first.ID() != "indoor" {
		t.Fatalf("expected category tag as id, got %q", first.ID())
	}
	if name := first.QueryClass("name"); name == nil || name.TextContent() != "Rubber Plant (Ficus Elastica)" {
		t.Fatalf("expected product name on first item")
	}
	if img := first.QueryTag("img"); img == nil || img.Attr("alt") != "Indoor Plant" {
		t.Fatalf("expected alt text on first item image")
	}
}

func TestUnknownPage(t *testing.T) {
	if _, ok := newTestHandler().Page("/about.html"); ok {
		t.Fatal("unknown path must not resolve to a page")
	}
}

func TestShopPage_CategoryFilter(t *testing.T) {
	status, doc := get(t, newPagesApp(), "/shop.html?category=herbs")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	if n := len(doc.ElementsByClass(search.ItemClass)); n != 2 {
		t.Fatalf("expected 2 herb items, got %d", n)
	}
}

func TestShopPage_SearchReadBack(t *testing.T) {
	_, doc := get(t, newPagesApp(), "/shop.html?search=mint")

	if v := doc.ElementByID(search.InputID).Value(); v != "mint" {
		t.Fatalf("expected search field to hold the query, got %q", v)
	}
	if !doc.ElementByID(search.OverlayID).HasClass(search.ActiveClass) {
		t.Fatal("expected overlay to be expanded")
	}
	cards := doc.ElementByID(search.ResultID).QueryClassAll("card")
	if len(cards) != 1 || !strings.Contains(cards[0].TextContent(), "Mint Plant") {
		t.Fatalf("expected one Mint Plant result, got %d", len(cards))
	}
	// the listing itself is left in place
	if n := len(doc.ElementsByClass(search.ItemClass)); n != len(product.DefaultCatalog) {
		t.Fatalf("expected listing untouched, got %d items", n)
	}
}

func TestShopPage_SearchReadBackEscapes(t *testing.T) {
	_, doc := get(t, newPagesApp(), "/shop.html?search=%3Cscript%3Ex%3C%2Fscript%3E")

	result := doc.ElementByID(search.ResultID)
	if result.QueryTag("script") != nil {
		t.Fatal("query must not be injected as markup")
	}
	if !strings.Contains(result.TextContent(), "<script>x</script>") {
		t.Fatalf("expected the query as text in the notice, got %q", result.TextContent())
	}
}

func TestShopPage_BlankSearchIgnored(t *testing.T) {
	_, doc := get(t, newPagesApp(), "/shop.html?search=%20%20")
	if doc.ElementByID(search.OverlayID).HasClass(search.ActiveClass) {
		t.Fatal("blank query must not expand the overlay")
	}
}

func TestPagesAsSearchSource(t *testing.T) {
	h := newTestHandler()
	products := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog))
	app := fiber.New()
	search.NewHandler(products, h, "shop.html").RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"query":"seed","path":"/shop.html"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"mode":"listing"`) || !strings.Contains(string(body), `"matches":3`) {
		t.Fatalf("expected listing search over the shop page, got %s", body)
	}
}
