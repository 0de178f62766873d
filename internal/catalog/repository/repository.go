package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"gadget_haven_backend/internal/catalog/transport"
)

//go:embed seed.yaml
var seedYAML []byte

type seed struct {
	Categories     []string                  `yaml:"categories"`
	Products       []transport.Product       `yaml:"products"`
	RepairServices []transport.RepairService `yaml:"repair_services"`
	Testimonials   []transport.Testimonial   `yaml:"testimonials"`
}

// StaticRepo serves reference data parsed once at startup.
type StaticRepo struct {
	data  seed
	index map[string]int
}

// New parses the embedded seed data.
func New() (*StaticRepo, error) {
	return Parse(seedYAML)
}

// Parse builds a repository from YAML seed data and checks its consistency:
// "All" must be the first category, product ids must be unique, and every
// product must belong to a listed category.
func Parse(raw []byte) (*StaticRepo, error) {
	var data seed
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}

	if len(data.Categories) == 0 || data.Categories[0] != AllCategories {
		return nil, fmt.Errorf("catalog seed: first category must be %q", AllCategories)
	}
	known := make(map[string]struct{}, len(data.Categories))
	for _, c := range data.Categories[1:] {
		known[c] = struct{}{}
	}

	index := make(map[string]int, len(data.Products))
	for i, p := range data.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog seed: product %d has no id", i)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("catalog seed: duplicate product id %q", p.ID)
		}
		if _, ok := known[p.Category]; !ok {
			return nil, fmt.Errorf("catalog seed: product %q has unknown category %q", p.ID, p.Category)
		}
		index[p.ID] = i
	}

	return &StaticRepo{data: data, index: index}, nil
}

// Compile-time check that StaticRepo implements Repository.
var _ Repository = (*StaticRepo)(nil)

// Products returns a copy of all products in seed order.
func (r *StaticRepo) Products() []transport.Product {
	return append([]transport.Product(nil), r.data.Products...)
}

// ProductByID looks up a product by its id.
func (r *StaticRepo) ProductByID(id string) (transport.Product, bool) {
	i, ok := r.index[id]
	if !ok {
		return transport.Product{}, false
	}
	return r.data.Products[i], true
}

// Categories returns the category labels, "All" first.
func (r *StaticRepo) Categories() []string {
	return append([]string(nil), r.data.Categories...)
}

// RepairServices returns a copy of the repair services.
func (r *StaticRepo) RepairServices() []transport.RepairService {
	return append([]transport.RepairService(nil), r.data.RepairServices...)
}

// Testimonials returns a copy of the testimonials.
func (r *StaticRepo) Testimonials() []transport.Testimonial {
	return append([]transport.Testimonial(nil), r.data.Testimonials...)
}
