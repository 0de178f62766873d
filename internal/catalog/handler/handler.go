package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget_haven_backend/internal/catalog/service"
	"gadget_haven_backend/internal/catalog/transport"
	"gadget_haven_backend/platform/httpkit"
	"gadget_haven_backend/platform/logger"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	svc *service.Service
	log *logger.Logger
}

// New creates a new catalog handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// ListProducts lists products, optionally filtered by category.
// GET /api/products?category=
func (h *Handler) ListProducts(c *gin.Context) {
	var req transport.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	httpkit.OK(c, h.svc.ListProducts(req.Category))
}

// GetProduct retrieves a product by ID.
// GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Param("id"))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, product)
}

// ListCategories lists the category labels.
// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	httpkit.OK(c, h.svc.ListCategories())
}

// ListRepairServices lists the repair services.
// GET /api/repair-services
func (h *Handler) ListRepairServices(c *gin.Context) {
	httpkit.OK(c, h.svc.ListRepairServices())
}

// ListTestimonials lists the testimonials.
// GET /api/testimonials
func (h *Handler) ListTestimonials(c *gin.Context) {
	httpkit.OK(c, h.svc.ListTestimonials())
}
