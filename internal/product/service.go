package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the whole catalog in display order.
func (s *Service) List() []Product {
	return s.repo.List()
}

// ListByCategory narrows the catalog to the given tags. No tags means all products.
func (s *Service) ListByCategory(tags ...string) []Product {
	if len(tags) == 0 {
		return s.repo.List()
	}
	return s.repo.ListByCategory(tags)
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
