package pages

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
	"github.com/wichananm65/plant-shop/internal/category"
	"github.com/wichananm65/plant-shop/internal/product"
	"github.com/wichananm65/plant-shop/internal/search"
)

// ShopContent lists product items. Each item carries its category tag as id,
// so the search filter can read name, tag and image alt text off the page.
type ShopContent struct {
	ListingPath string
	Categories  []category.CategoryItem
	Active      string
	Products    []product.Product
}

func (sc ShopContent) Render(b *element.Builder) (x any) {
	b.DivClass("shop-page", "id", "shop").R(
		b.UlClass("nav nav-tabs").R(
			sc.tab(b, "", "All"),
			b.Wrap(func() {
				for _, c := range sc.Categories {
					sc.tab(b, c.Tag, c.Tag)
				}
			}),
		),
		b.DivClass("row g-4 product-grid").R(
			b.Wrap(func() {
				for _, p := range sc.Products {
					renderProductItem(b, p)
				}
			}),
		),
	)
	return
}

func (sc ShopContent) tab(b *element.Builder, tag, label string) any {
	href := sc.ListingPath
	if tag != "" {
		href += "?category=" + search.EncodeQueryComponent(tag)
	}
	class := "nav-link"
	if tag == sc.Active {
		class += " active"
	}
	return b.Li("class", "nav-item").R(
		b.A("class", class, "href", search.EscapeHTML(href)).T(search.EscapeHTML(label)),
	)
}

// renderProductItem reuses the search card markup so listing cards and
// catalog results look the same.
func renderProductItem(b *element.Builder, p product.Product) {
	card, err := search.ProductCard(p)
	if err != nil {
		logger.LogErr(err, "product card not rendered")
		return
	}
	b.DivClass("col-lg-3 col-md-4 col-sm-6 product-item", "id", search.EscapeHTML(p.ID)).R(
		b.T(card.OuterHTML()),
	)
}
