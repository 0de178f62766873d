package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gadget_haven_backend/internal/events"
	"gadget_haven_backend/internal/submissions/repository"
	"gadget_haven_backend/internal/submissions/transport"
	"gadget_haven_backend/platform/apperr"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/validator"
)

// Submission kinds, as reported in events and logs.
const (
	KindContact       = "contact_form"
	KindSellRequest   = "sell_request"
	KindSwapRequest   = "swap_request"
	KindRepairBooking = "repair_booking"
	KindPriceQuote    = "price_quote"
)

const (
	msgValidationFailed = "validation failed"
	msgSaveFailed       = "failed to save submission"
	msgLoadFailed       = "failed to load submissions"
)

// Service validates, stamps, persists and announces customer submissions.
type Service struct {
	repo  *repository.Repo
	val   *validator.Validator
	bus   events.Publisher
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// New creates a new submissions service.
func New(repo *repository.Repo, val *validator.Validator, bus events.Publisher, log *logger.Logger) *Service {
	return &Service{
		repo:  repo,
		val:   val,
		bus:   bus,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// SubmitContact stores a contact form.
func (s *Service) SubmitContact(ctx context.Context, req transport.ContactFormCreate) (transport.ContactForm, error) {
	if err := s.validate(req); err != nil {
		return transport.ContactForm{}, err
	}
	rec := transport.ContactForm{
		ID:        s.newID(),
		Name:      *req.Name,
		Email:     *req.Email,
		Phone:     *req.Phone,
		Message:   *req.Message,
		CreatedAt: s.now(),
	}
	if err := s.persist(ctx, KindContact, repository.ContactForms, rec, contact{rec.ID, rec.Email, rec.Phone, rec.CreatedAt}, map[string]string{
		"email": rec.Email,
	}); err != nil {
		return transport.ContactForm{}, err
	}
	return rec, nil
}

// SubmitSellRequest stores a device sell-in request with status pending.
func (s *Service) SubmitSellRequest(ctx context.Context, req transport.SellRequestCreate) (transport.SellRequest, error) {
	if err := s.validate(req); err != nil {
		return transport.SellRequest{}, err
	}
	rec := transport.SellRequest{
		ID:             s.newID(),
		DeviceType:     *req.DeviceType,
		Model:          *req.Model,
		Storage:        *req.Storage,
		Condition:      *req.Condition,
		BatteryHealth:  req.BatteryHealth,
		Name:           *req.Name,
		Email:          *req.Email,
		Phone:          *req.Phone,
		AdditionalInfo: req.AdditionalInfo,
		Status:         transport.StatusPending,
		CreatedAt:      s.now(),
	}
	if err := s.persist(ctx, KindSellRequest, repository.SellRequests, rec, contact{rec.ID, rec.Email, rec.Phone, rec.CreatedAt}, map[string]string{
		"model": rec.Model,
		"email": rec.Email,
	}); err != nil {
		return transport.SellRequest{}, err
	}
	return rec, nil
}

// SubmitSwapRequest stores a device swap request with status pending.
func (s *Service) SubmitSwapRequest(ctx context.Context, req transport.SwapRequestCreate) (transport.SwapRequest, error) {
	if err := s.validate(req); err != nil {
		return transport.SwapRequest{}, err
	}
	rec := transport.SwapRequest{
		ID:                s.newID(),
		CurrentDeviceType: *req.CurrentDeviceType,
		CurrentModel:      *req.CurrentModel,
		CurrentCondition:  *req.CurrentCondition,
		DesiredDevice:     *req.DesiredDevice,
		Name:              *req.Name,
		Email:             *req.Email,
		Phone:             *req.Phone,
		AdditionalInfo:    req.AdditionalInfo,
		Status:            transport.StatusPending,
		CreatedAt:         s.now(),
	}
	if err := s.persist(ctx, KindSwapRequest, repository.SwapRequests, rec, contact{rec.ID, rec.Email, rec.Phone, rec.CreatedAt}, map[string]string{
		"current_model":  rec.CurrentModel,
		"desired_device": rec.DesiredDevice,
	}); err != nil {
		return transport.SwapRequest{}, err
	}
	return rec, nil
}

// SubmitRepairBooking stores a repair booking with status pending.
func (s *Service) SubmitRepairBooking(ctx context.Context, req transport.RepairBookingCreate) (transport.RepairBooking, error) {
	if err := s.validate(req); err != nil {
		return transport.RepairBooking{}, err
	}
	rec := transport.RepairBooking{
		ID:               s.newID(),
		DeviceType:       *req.DeviceType,
		DeviceModel:      *req.DeviceModel,
		Issue:            *req.Issue,
		IssueDescription: req.IssueDescription,
		PreferredDate:    *req.PreferredDate,
		Name:             *req.Name,
		Phone:            *req.Phone,
		Email:            req.Email,
		Status:           transport.StatusPending,
		CreatedAt:        s.now(),
	}
	if err := s.persist(ctx, KindRepairBooking, repository.RepairBookings, rec, contact{rec.ID, deref(rec.Email), rec.Phone, rec.CreatedAt}, map[string]string{
		"device_model": rec.DeviceModel,
		"issue":        rec.Issue,
	}); err != nil {
		return transport.RepairBooking{}, err
	}
	return rec, nil
}

// SubmitPriceQuote stores a price quote request.
func (s *Service) SubmitPriceQuote(ctx context.Context, req transport.PriceQuoteRequestCreate) (transport.PriceQuoteRequest, error) {
	if err := s.validate(req); err != nil {
		return transport.PriceQuoteRequest{}, err
	}
	rec := transport.PriceQuoteRequest{
		ID:              s.newID(),
		ProductName:     *req.ProductName,
		ProductCategory: *req.ProductCategory,
		Name:            *req.Name,
		Phone:           *req.Phone,
		Email:           req.Email,
		Message:         req.Message,
		CreatedAt:       s.now(),
	}
	if err := s.persist(ctx, KindPriceQuote, repository.PriceQuotes, rec, contact{rec.ID, deref(rec.Email), rec.Phone, rec.CreatedAt}, map[string]string{
		"product_name": rec.ProductName,
	}); err != nil {
		return transport.PriceQuoteRequest{}, err
	}
	return rec, nil
}

// ListSellRequests returns stored sell requests, at most repository.ListLimit.
func (s *Service) ListSellRequests(ctx context.Context) ([]transport.SellRequest, error) {
	return list[transport.SellRequest](ctx, s, repository.SellRequests)
}

// ListSwapRequests returns stored swap requests, at most repository.ListLimit.
func (s *Service) ListSwapRequests(ctx context.Context) ([]transport.SwapRequest, error) {
	return list[transport.SwapRequest](ctx, s, repository.SwapRequests)
}

// ListRepairBookings returns stored repair bookings, at most repository.ListLimit.
func (s *Service) ListRepairBookings(ctx context.Context) ([]transport.RepairBooking, error) {
	return list[transport.RepairBooking](ctx, s, repository.RepairBookings)
}

func list[T any](ctx context.Context, s *Service, collection string) ([]T, error) {
	items, err := repository.List[T](ctx, s.repo, collection)
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("list "+collection, err)
		return nil, apperr.Wrap(apperr.KindInternal, msgLoadFailed, err).WithOp(collection)
	}
	return items, nil
}

func (s *Service) validate(req any) error {
	if err := s.val.Struct(req); err != nil {
		return apperr.Validation(msgValidationFailed).WithDetails(validator.Describe(err))
	}
	return nil
}

// contact identifies a stored submission, when it arrived, and how to
// reach its sender.
type contact struct {
	id    string
	email string
	phone string
	at    time.Time
}

// persist writes the record and then announces it. Nothing is announced
// when the write fails.
func (s *Service) persist(ctx context.Context, kind, collection string, rec any, c contact, summary map[string]string) error {
	if err := s.repo.Insert(ctx, collection, rec); err != nil {
		s.log.WithContext(ctx).DatabaseError("insert "+collection, err)
		return apperr.Wrap(apperr.KindInternal, msgSaveFailed, err).WithOp(collection)
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.SubmissionReceived{
			BaseEvent:    events.NewBaseEventAt(c.at),
			Kind:         kind,
			SubmissionID: c.id,
			ContactEmail: c.email,
			ContactPhone: c.phone,
			Summary:      summary,
		})
	}
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
