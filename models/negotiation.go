package models

import "time"

// Negotiation statuses. STARTED and the two COUNTERED states are
// non-terminal; ACCEPTED, REJECTED and EXPIRED are terminal and final.
const (
	NegotiationStarted            = "STARTED"
	NegotiationUserCountered      = "USER_COUNTERED"
	NegotiationOrganizerCountered = "ORGANIZER_COUNTERED"
	NegotiationAccepted           = "ACCEPTED"
	NegotiationRejected           = "REJECTED"
	NegotiationExpired            = "EXPIRED"
)

// Offer actors.
const (
	ActorUser      = "user"
	ActorOrganizer = "organizer"
)

// Offer is one entry of a negotiation's append-only offer log.
type Offer struct {
	Actor     string    `bson:"actor" json:"actor"` // ActorUser or ActorOrganizer
	Amount    float64   `bson:"amount" json:"amount"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Negotiation is a turn-based offer exchange between a user and an organizer
// over one event request. Mutated only through the negotiation service;
// terminal negotiations are retained for audit, never deleted.
type Negotiation struct {
	ID             string    `bson:"id" json:"id"`
	EventRequestID string    `bson:"event_request_id" json:"eventRequestId"`
	OrganizerID    string    `bson:"organizer_id" json:"organizerId"`
	UserID         string    `bson:"user_id" json:"userId"`
	Status         string    `bson:"status" json:"status"`
	Offers         []Offer   `bson:"offers" json:"offers"`
	CurrentAmount  float64   `bson:"current_amount" json:"currentAmount"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	ExpiresAt      time.Time `bson:"expires_at" json:"expiresAt"`

	// Version is the optimistic-concurrency token; incremented on every
	// successful update.
	Version int64 `bson:"version" json:"-"`
}

// Terminal reports whether the negotiation reached a final state.
func (n *Negotiation) Terminal() bool {
	switch n.Status {
	case NegotiationAccepted, NegotiationRejected, NegotiationExpired:
		return true
	}
	return false
}

// LastOffer returns the most recent offer, or nil when the log is empty.
func (n *Negotiation) LastOffer() *Offer {
	if len(n.Offers) == 0 {
		return nil
	}
	return &n.Offers[len(n.Offers)-1]
}

// CounterAdvice is heuristic guidance for an actor's next counter-offer.
// Derived, never persisted.
type CounterAdvice struct {
	RecommendedAmount float64 `json:"recommendedAmount"`
	MinAcceptable     float64 `json:"minAcceptable"`
	MaxReasonable     float64 `json:"maxReasonable"`
	ConcessionRate    float64 `json:"concessionRate"` // fraction of the current amount, 0.05–0.30
	Strategy          string  `json:"strategy"`       // "aggressive", "balanced" or "conservative"
	Confidence        string  `json:"confidence"`     // "low", "medium" or "high"
}
