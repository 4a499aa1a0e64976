package negotiation

import (
	"context"
	"time"

	"eventify/models"
)

// NegotiationService owns the lifecycle of price negotiations. All writes go
// through compare-and-swap updates on the registry, so concurrent calls
// against the same negotiation either serialize cleanly or surface
// models.ConflictError.
type NegotiationService interface {
	// Start opens a negotiation with the organizer's opening offer. Fails
	// with models.ConflictError when an active negotiation already exists
	// for the same (eventRequestId, organizerId) pair.
	Start(ctx context.Context, eventRequestID, organizerID, userID string, offer float64, message string) (*models.Negotiation, error)
	// Counter appends a counter-offer for the given actor and flips the
	// status accordingly. The actor of the most recent offer cannot counter
	// again before the other side responds.
	Counter(ctx context.Context, negotiationID, actor string, amount float64, message string) (*models.Negotiation, error)
	// Accept closes the negotiation at the current amount.
	Accept(ctx context.Context, negotiationID, userID string) (*models.Negotiation, error)
	// Reject closes the negotiation without agreement.
	Reject(ctx context.Context, negotiationID, actor string) (*models.Negotiation, error)
	// GetStatus returns the negotiation, lazily flipping it to EXPIRED when
	// the deadline has passed.
	GetStatus(ctx context.Context, negotiationID string) (*models.Negotiation, error)
	// Advise returns heuristic counter-offer guidance for the given actor.
	Advise(ctx context.Context, negotiationID, actor string) (*models.CounterAdvice, error)
	// PriceAnalysis runs the budget analyzer over a demand synthesized from
	// the three parameters. Pure; no negotiation side effects.
	PriceAnalysis(eventType, location string, budget float64) models.BudgetAnalysis
}

// ExpiryScheduler enqueues a deferred expiry check for a negotiation. The
// asynq-backed implementation lives in services/tasks; a nil scheduler
// disables the sweep and leaves expiry fully read-triggered.
type ExpiryScheduler interface {
	ScheduleExpiry(negotiationID string, at time.Time) error
}
