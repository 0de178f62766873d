package service

import (
	"gadget_haven_backend/internal/catalog/repository"
	"gadget_haven_backend/internal/catalog/transport"
	"gadget_haven_backend/platform/apperr"
)

const productNotFoundMessage = "Product not found"

// Service provides read access to the storefront reference data.
// It has no side effects and is safe for concurrent use.
type Service struct {
	repo repository.Repository
}

// New creates a new catalog service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// ListProducts returns all products, or only those whose category matches
// exactly. An empty category or "All" disables the filter; an unknown
// category yields an empty list.
func (s *Service) ListProducts(category string) []transport.Product {
	products := s.repo.Products()
	if category == "" || category == repository.AllCategories {
		return products
	}

	filtered := make([]transport.Product, 0)
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetProduct returns the product with the given id.
func (s *Service) GetProduct(id string) (transport.Product, error) {
	product, ok := s.repo.ProductByID(id)
	if !ok {
		return transport.Product{}, apperr.NotFound(productNotFoundMessage)
	}
	return product, nil
}

// ListCategories returns the category labels with "All" first.
func (s *Service) ListCategories() []string {
	return s.repo.Categories()
}

// ListRepairServices returns the advertised repair services.
func (s *Service) ListRepairServices() []transport.RepairService {
	return s.repo.RepairServices()
}

// ListTestimonials returns the customer testimonials.
func (s *Service) ListTestimonials() []transport.Testimonial {
	return s.repo.Testimonials()
}
