package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget_haven_backend/internal/submissions/service"
	"gadget_haven_backend/internal/submissions/transport"
	"gadget_haven_backend/platform/apperr"
	"gadget_haven_backend/platform/httpkit"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/validator"
)

const (
	msgInvalidRequest = "invalid request"
	maxBodyBytes      = 64 << 10
)

// Handler handles HTTP requests for customer submissions.
type Handler struct {
	svc *service.Service
	log *logger.Logger
}

// New creates a new submissions handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req transport.ContactFormCreate
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.SubmitContact(c.Request.Context(), req)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// SubmitSellRequest handles POST /api/sell-request
func (h *Handler) SubmitSellRequest(c *gin.Context) {
	var req transport.SellRequestCreate
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.SubmitSellRequest(c.Request.Context(), req)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListSellRequests handles GET /api/sell-requests
func (h *Handler) ListSellRequests(c *gin.Context) {
	result, err := h.svc.ListSellRequests(c.Request.Context())
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// SubmitSwapRequest handles POST /api/swap-request
func (h *Handler) SubmitSwapRequest(c *gin.Context) {
	var req transport.SwapRequestCreate
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.SubmitSwapRequest(c.Request.Context(), req)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListSwapRequests handles GET /api/swap-requests
func (h *Handler) ListSwapRequests(c *gin.Context) {
	result, err := h.svc.ListSwapRequests(c.Request.Context())
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// SubmitRepairBooking handles POST /api/repair-booking
func (h *Handler) SubmitRepairBooking(c *gin.Context) {
	var req transport.RepairBookingCreate
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.SubmitRepairBooking(c.Request.Context(), req)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListRepairBookings handles GET /api/repair-bookings
func (h *Handler) ListRepairBookings(c *gin.Context) {
	result, err := h.svc.ListRepairBookings(c.Request.Context())
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// SubmitPriceQuote handles POST /api/price-quote
func (h *Handler) SubmitPriceQuote(c *gin.Context) {
	var req transport.PriceQuoteRequestCreate
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.SubmitPriceQuote(c.Request.Context(), req)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// bind decodes the JSON body into dst. Unknown fields are ignored; a value
// of the wrong JSON type is reported as a validation failure on that field.
// Bodies over maxBodyBytes are rejected with 413.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case errors.As(err, &sizeErr):
		httpkit.HandleError(c, h.log, apperr.New(apperr.KindPayloadTooLarge, "request body too large"))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		httpkit.HandleError(c, h.log, apperr.Validation("validation failed").WithDetails([]validator.FieldError{{
			Field:   typeErr.Field,
			Message: "value must be a " + typeErr.Type.String(),
		}}))
	case errors.Is(err, io.EOF):
		httpkit.HandleError(c, h.log, apperr.BadRequest("request body is required"))
	default:
		// Covers malformed JSON and bodies that are not a JSON object.
		httpkit.HandleError(c, h.log, apperr.BadRequest(msgInvalidRequest))
	}
	return false
}
