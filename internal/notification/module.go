// Package notification reacts to domain events by telling staff about them.
// Outbound email is not wired yet; every notice is written to the
// structured log addressed to the configured admin mailbox.
package notification

import (
	"context"
	"log/slog"
	"sort"

	"gadget_haven_backend/internal/events"
	"gadget_haven_backend/platform/config"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/phone"
	"gadget_haven_backend/platform/sanitize"
)

// summaryValueLimit bounds free-text summary values in a notice.
const summaryValueLimit = 200

// Module is the notification module that subscribes to submission events.
type Module struct {
	adminEmail string
	log        *logger.Logger
}

// New creates a new notification module.
func New(cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{
		adminEmail: cfg.GetAdminEmail(),
		log:        log,
	}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Subscriber) {
	bus.Subscribe(events.SubmissionReceived{}.EventName(), m)
}

// Handle implements events.Handler.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.SubmissionReceived:
		return m.handleSubmissionReceived(ctx, e)
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleSubmissionReceived(ctx context.Context, e events.SubmissionReceived) error {
	attrs := []any{
		slog.String("kind", e.Kind),
		slog.String("submissionId", e.SubmissionID),
		slog.String("to", m.adminEmail),
		slog.Bool("delivered", false),
	}
	if e.ContactEmail != "" {
		attrs = append(attrs, slog.String("replyTo", e.ContactEmail))
	}
	if e.ContactPhone != "" {
		dial, valid := phone.NormalizeE164(e.ContactPhone)
		attrs = append(attrs, slog.String("phone", dial), slog.Bool("phoneValid", valid))
	}
	if len(e.Summary) > 0 {
		keys := make([]string, 0, len(e.Summary))
		for k := range e.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]any, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, slog.String(k, sanitize.Line(e.Summary[k], summaryValueLimit)))
		}
		attrs = append(attrs, slog.Group("summary", fields...))
	}

	m.log.WithContext(ctx).Info("new submission received", attrs...)
	return nil
}

// Compile-time check that Module implements events.Handler
var _ events.Handler = (*Module)(nil)
