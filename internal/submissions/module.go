// Package submissions provides the customer form bounded context: contact
// forms, sell-in and swap requests, repair bookings and price quotes.
package submissions

import (
	"gadget_haven_backend/internal/events"
	apphttp "gadget_haven_backend/internal/http"
	"gadget_haven_backend/internal/submissions/handler"
	"gadget_haven_backend/internal/submissions/repository"
	"gadget_haven_backend/internal/submissions/service"
	"gadget_haven_backend/platform/docstore"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/validator"
)

// Module is the submissions bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the submissions module with all its dependencies.
func NewModule(store docstore.Store, val *validator.Validator, bus events.Publisher, log *logger.Logger) *Module {
	repo := repository.New(store)
	svc := service.New(repo, val, bus, log)
	return &Module{
		handler: handler.New(svc, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "submissions"
}

// RegisterRoutes mounts the form endpoints. POST routes share the form rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	forms := ctx.API.Group("")
	if ctx.FormRateLimit != nil {
		forms.Use(ctx.FormRateLimit)
	}
	forms.POST("/contact", m.handler.SubmitContact)
	forms.POST("/sell-request", m.handler.SubmitSellRequest)
	forms.POST("/swap-request", m.handler.SubmitSwapRequest)
	forms.POST("/repair-booking", m.handler.SubmitRepairBooking)
	forms.POST("/price-quote", m.handler.SubmitPriceQuote)

	ctx.API.GET("/sell-requests", m.handler.ListSellRequests)
	ctx.API.GET("/swap-requests", m.handler.ListSwapRequests)
	ctx.API.GET("/repair-bookings", m.handler.ListRepairBookings)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
