package category

import "github.com/wichananm65/plant-shop/internal/product"

// ProductLister is the part of the product service the category list depends on.
type ProductLister interface {
	List() []product.Product
}

// Service derives categories from the product catalog.
type Service struct {
	products ProductLister
}

func NewService(products ProductLister) *Service {
	return &Service{products: products}
}

// List returns up to `limit` distinct category tags in first-seen catalog order.
// A limit <= 0 returns all of them.
func (s *Service) List(limit int) []CategoryItem {
	out := make([]CategoryItem, 0)
	index := map[string]int{}
	for _, p := range s.products.List() {
		if i, ok := index[p.ID]; ok {
			out[i].Count++
			continue
		}
		if limit > 0 && len(out) == limit {
			continue
		}
		index[p.ID] = len(out)
		out = append(out, CategoryItem{Tag: p.ID, Count: 1})
	}
	return out
}
