package search

import (
	"fmt"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/wichananm65/plant-shop/internal/dom"
	"github.com/wichananm65/plant-shop/internal/product"
)

const columnClass = "col-lg-3 col-md-4 col-sm-6"

// Card is a candidate that can produce its own display element.
type Card interface {
	Candidate
	Card() (*dom.Element, error)
}

// itemCandidate is a product item already on the page.
type itemCandidate struct {
	el *dom.Element
}

func (c itemCandidate) Fields() Fields {
	f := Fields{CategoryTag: c.el.ID()}
	nameEl := c.el.QueryClass("name")
	if nameEl == nil {
		nameEl = c.el.QueryClass("card-title")
	}
	if nameEl != nil {
		f.Name = nameEl.TextContent()
	}
	if img := c.el.QueryTag("img"); img != nil {
		f.AltText = img.Attr("alt")
	}
	return f
}

// Card clones the item's inner .card, or the whole item when it has none.
func (c itemCandidate) Card() (*dom.Element, error) {
	src := c.el.QueryClass("card")
	if src == nil {
		src = c.el
	}
	clone := src.Clone()
	clone.RemoveClass(ItemClass)
	clone.RemoveClass("d-none")
	return clone, nil
}

// recordCandidate is a static catalog record.
type recordCandidate struct {
	p product.Product
}

func (c recordCandidate) Fields() Fields {
	return Fields{Name: c.p.Name, CategoryTag: c.p.ID, AltText: c.p.Alt}
}

const productCardMarkup = `<div class="card product-card">
  <img src="%s" class="product-img" alt="%s">
  <div class="card-body text-center">
    <h5 class="card-title name">%s</h5>
    <p class="card-text">%s</p>
    <div class="btn-container">
      <button class="btn btn-success shop-now">Shop Now</button>
      <button class="btn btn-success add-to-cart">Add to Cart</button>
    </div>
  </div>
</div>`

// Card builds a fresh product card from the record.
func (c recordCandidate) Card() (*dom.Element, error) {
	return ProductCard(c.p)
}

// ProductCard renders p as a card element. Every field is escaped.
func ProductCard(p product.Product) (*dom.Element, error) {
	markup := fmt.Sprintf(productCardMarkup,
		EscapeHTML(p.Image), EscapeHTML(p.Alt), EscapeHTML(p.Name), EscapeHTML(p.Price))
	els, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, serr.New("product card markup produced no element")
	}
	return els[0], nil
}

const noResultsMarkup = `<div class="col-12">
  <div class="no-results">
    <i class="fas fa-search"></i>
    <h5>No results found</h5>
    <p>We couldn't find any products matching "<strong>%s</strong>"</p>
    <p>Try searching with different keywords or browse our categories.</p>
  </div>
</div>`

// render writes the matches of out.Query into the results container and
// records the outcome. The container is always fully replaced.
func (c *Controller) render(out Outcome, cands []Card) {
	matched := Filter(out.Query, cands)
	out.Matches = len(matched)
	c.last = out

	result := c.doc.ElementByID(ResultID)
	if result == nil {
		return
	}
	result.SetClassName(resultClass)
	result.Clear()

	for _, m := range matched {
		card, err := m.Card()
		if err != nil {
			logger.LogErr(err, "search result card skipped")
			continue
		}
		card.SetAttr("style", "height: 100%")
		col := dom.NewElement("div", columnClass)
		col.AppendChild(card)
		result.AppendChild(col)
	}

	if len(matched) == 0 {
		if err := result.SetInnerHTML(fmt.Sprintf(noResultsMarkup, EscapeHTML(out.Query))); err != nil {
			logger.LogErr(err, "no results notice not rendered")
		}
	}
}
