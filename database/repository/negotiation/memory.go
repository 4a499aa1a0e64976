package negotiationRepo

import (
	"context"
	"fmt"
	"sync"

	"eventify/models"
)

// MemoryNegotiationRepo implements NegotiationRepository with an in-process
// map. It mirrors the Mongo backend's conflict semantics and is used in
// tests and in dev mode without a database.
type MemoryNegotiationRepo struct {
	mu      sync.RWMutex
	records map[string]models.Negotiation
}

// NewMemoryNegotiationRepo creates an empty in-memory registry.
func NewMemoryNegotiationRepo() *MemoryNegotiationRepo {
	return &MemoryNegotiationRepo{records: make(map[string]models.Negotiation)}
}

func (r *MemoryNegotiationRepo) Insert(ctx context.Context, n *models.Negotiation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EventRequestID == n.EventRequestID &&
			existing.OrganizerID == n.OrganizerID &&
			!existing.Terminal() {
			return models.ConflictError{
				Reason: fmt.Sprintf("an active negotiation already exists for event request %s and organizer %s",
					n.EventRequestID, n.OrganizerID),
			}
		}
	}
	if _, ok := r.records[n.ID]; ok {
		return models.ConflictError{Reason: fmt.Sprintf("negotiation %s already exists", n.ID)}
	}
	r.records[n.ID] = cloneNegotiation(n)
	return nil
}

func (r *MemoryNegotiationRepo) GetByID(ctx context.Context, id string) (*models.Negotiation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.records[id]
	if !ok {
		return nil, models.NotFoundError{Resource: "negotiation", ID: id}
	}
	copy := cloneNegotiation(&n)
	return &copy, nil
}

func (r *MemoryNegotiationRepo) GetByEventRequest(ctx context.Context, eventRequestID string) ([]models.Negotiation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Negotiation
	for _, n := range r.records {
		if n.EventRequestID == eventRequestID {
			out = append(out, cloneNegotiation(&n))
		}
	}
	return out, nil
}

func (r *MemoryNegotiationRepo) Update(ctx context.Context, n *models.Negotiation, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.records[n.ID]
	if !ok {
		return models.NotFoundError{Resource: "negotiation", ID: n.ID}
	}
	if stored.Version != expectedVersion {
		return models.ConflictError{
			Reason: fmt.Sprintf("negotiation %s was modified concurrently", n.ID),
		}
	}
	updated := cloneNegotiation(n)
	updated.Version = expectedVersion + 1
	r.records[n.ID] = updated
	n.Version = updated.Version
	return nil
}

func cloneNegotiation(n *models.Negotiation) models.Negotiation {
	copy := *n
	copy.Offers = append([]models.Offer(nil), n.Offers...)
	return copy
}
