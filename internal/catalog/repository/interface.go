package repository

import "gadget_haven_backend/internal/catalog/transport"

// AllCategories is the sentinel category that disables filtering.
const AllCategories = "All"

// Repository exposes the read-only reference data.
// Implementations must return data that callers may not mutate in place;
// the static implementation hands out copies.
type Repository interface {
	Products() []transport.Product
	ProductByID(id string) (transport.Product, bool)
	Categories() []string
	RepairServices() []transport.RepairService
	Testimonials() []transport.Testimonial
}
