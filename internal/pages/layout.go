// Package pages renders the storefront pages with rohanthewiz/element.
package pages

import (
	"github.com/rohanthewiz/element"
	"github.com/wichananm65/plant-shop/internal/search"
)

// Layout wraps body in the shared page shell: head, navbar and the search overlay.
func Layout(title, listingPath string, body element.Component) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(search.EscapeHTML(title)),
			b.Link("rel", "stylesheet", "href", "/css/style.css"),
		),
		b.Body().R(
			b.Nav("class", "navbar").R(
				b.A("class", "navbar-brand", "href", "index.html").T("Plant Shop"),
				b.UlClass("navbar-nav").R(
					b.Li("class", "nav-link-item").R(b.A("href", "index.html").T("Home")),
					b.Li("class", "nav-link-item").R(b.A("href", listingPath).T("Shop")),
				),
			),
			element.RenderComponents(b, SearchOverlay{ListingPath: listingPath}),
			b.Main().R(
				element.RenderComponents(b, body),
			),
		),
	)

	return b.String()
}

// SearchOverlay is the offcanvas search panel. Without scripts the form
// submits to the listing page with the same query parameter redirect mode uses.
type SearchOverlay struct {
	ListingPath string
}

func (o SearchOverlay) Render(b *element.Builder) (x any) {
	b.DivClass("offcanvas offcanvas-top", "id", search.OverlayID, "tabindex", "-1").R(
		b.DivClass("offcanvas-body").R(
			b.Form("action", o.ListingPath, "method", "get", "class", "search-form").R(
				b.Input("type", "text",
					"id", search.InputID,
					"name", search.QueryParam,
					"class", "form-control",
					"placeholder", "Search plants, seeds, herbs...",
					"value", ""),
				b.Button("type", "submit", "class", "btn btn-success").T("Search"),
			),
			b.DivClass("row g-4 mt-3", "id", search.ResultID).R(),
		),
	)
	return
}
