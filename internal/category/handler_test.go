package category

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/plant-shop/internal/product"
)

func newTestService() *Service {
	return NewService(product.NewService(product.NewInMemoryRepository(product.DefaultCatalog)))
}

func TestList_DistinctInCatalogOrder(t *testing.T) {
	items := newTestService().List(0)

	want := []CategoryItem{
		{Tag: "indoor", Count: 5},
		{Tag: "outdoor", Count: 3},
		{Tag: "succulents", Count: 2},
		{Tag: "herbs", Count: 2},
		{Tag: "seeds", Count: 3},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d categories, got %d: %+v", len(want), len(items), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("category %d: expected %+v, got %+v", i, want[i], items[i])
		}
	}
}

func TestList_LimitKeepsCounts(t *testing.T) {
	items := newTestService().List(2)
	if len(items) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(items))
	}
	if items[0].Count != 5 || items[1].Count != 3 {
		t.Fatalf("limited list should still count every product: %+v", items)
	}
}

func TestGetCategories_Route(t *testing.T) {
	app := fiber.New()
	NewHandler(newTestService()).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/product/category?limit=3", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var items []CategoryItem
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 3 || items[2].Tag != "succulents" {
		t.Fatalf("unexpected categories %+v", items)
	}
}
