// Package catalog provides the storefront reference-data bounded context:
// products, categories, repair services and testimonials.
package catalog

import (
	"gadget_haven_backend/internal/catalog/handler"
	"gadget_haven_backend/internal/catalog/repository"
	"gadget_haven_backend/internal/catalog/service"
	apphttp "gadget_haven_backend/internal/http"
	"gadget_haven_backend/platform/logger"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the catalog module from the given repository.
func NewModule(repo repository.Repository, log *logger.Logger) *Module {
	svc := service.New(repo)
	return &Module{
		handler: handler.New(svc, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/products", m.handler.ListProducts)
	ctx.API.GET("/products/:id", m.handler.GetProduct)
	ctx.API.GET("/categories", m.handler.ListCategories)
	ctx.API.GET("/repair-services", m.handler.ListRepairServices)
	ctx.API.GET("/testimonials", m.handler.ListTestimonials)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
