package pages

import (
	"github.com/rohanthewiz/element"
	"github.com/wichananm65/plant-shop/internal/category"
	"github.com/wichananm65/plant-shop/internal/search"
)

// HomeContent is the landing page body. It carries no product items, so a
// search here renders from the static catalog.
type HomeContent struct {
	ListingPath string
	Categories  []category.CategoryItem
}

func (hc HomeContent) Render(b *element.Builder) (x any) {
	b.DivClass("hero").R(
		b.H2().T("Bring nature home"),
		b.P().T("Indoor and outdoor plants, succulents, herbs and seeds."),
		b.A("class", "btn btn-success", "href", hc.ListingPath).T("Shop Now"),
	)
	b.DivClass("category-showcase").R(
		b.H3().T("Browse by category"),
		b.UlClass("category-list").R(
			b.Wrap(func() {
				for _, c := range hc.Categories {
					href := hc.ListingPath + "?category=" + search.EncodeQueryComponent(c.Tag)
					b.Li("class", "category-link").R(
						b.A("href", search.EscapeHTML(href)).T(search.EscapeHTML(c.Tag)),
					)
				}
			}),
		),
	)
	return
}
