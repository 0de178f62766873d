// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"gadget_haven_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Publisher   = events.Publisher
	Subscriber  = events.Subscriber
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewBaseEventAt = events.NewBaseEventAt
)

// =============================================================================
// Submission Domain Events
// =============================================================================

// SubmissionReceived is published after a customer form has been persisted.
// Summary holds the kind-specific fields worth showing to staff.
type SubmissionReceived struct {
	BaseEvent
	Kind         string            `json:"kind"`
	SubmissionID string            `json:"submissionId"`
	ContactEmail string            `json:"contactEmail,omitempty"`
	ContactPhone string            `json:"contactPhone"`
	Summary      map[string]string `json:"summary"`
}

func (e SubmissionReceived) EventName() string { return "submissions.received" }
