package negotiationRepo

import (
	"context"

	"eventify/models"
)

// NegotiationRepository is the registry of active and closed negotiations.
// Implementations must be safe for concurrent use and must enforce two
// rules: at most one non-terminal negotiation per (eventRequestId,
// organizerId) pair, and compare-and-swap updates on the record version so
// concurrent counters cannot silently overwrite each other.
type NegotiationRepository interface {
	// Insert stores a new negotiation. Returns models.ConflictError when a
	// non-terminal negotiation already exists for the same pair.
	Insert(ctx context.Context, n *models.Negotiation) error
	// GetByID retrieves a negotiation by its unique ID. Returns
	// models.NotFoundError for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Negotiation, error)
	// GetByEventRequest lists all negotiations bound to an event request.
	GetByEventRequest(ctx context.Context, eventRequestID string) ([]models.Negotiation, error)
	// Update writes the negotiation only if the stored version still equals
	// expectedVersion, then increments it. Returns models.ConflictError on a
	// lost race and models.NotFoundError for unknown ids.
	Update(ctx context.Context, n *models.Negotiation, expectedVersion int64) error
}
