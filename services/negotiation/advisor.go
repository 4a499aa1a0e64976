package negotiation

import (
	"context"

	"eventify/models"
)

// Advisor heuristics. The reasonable settlement band spans 70–100% of the
// organizer's opening offer; per-round concessions are bounded to 5–30%.
const (
	bandFloorFactor   = 0.7
	baseConcession    = 0.20
	concessionDecay   = 0.03
	minConcession     = 0.05
	maxConcession     = 0.30
	aggressiveCutoff  = 0.7
	balancedCutoff    = 0.4
	historyForHigh    = 5
	historyForMedium  = 2
)

func (s *DefaultNegotiationService) Advise(ctx context.Context, negotiationID, actor string) (*models.CounterAdvice, error) {
	if actor != models.ActorUser && actor != models.ActorOrganizer {
		return nil, models.ValidationError{Field: "actor", Reason: "must be \"user\" or \"organizer\""}
	}

	n, err := s.GetStatus(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if n.Terminal() {
		return nil, models.InvalidStateError{
			NegotiationID: negotiationID,
			Reason:        "negotiation is closed (" + n.Status + ")",
		}
	}

	opening := n.Offers[0].Amount
	minAcceptable := bandFloorFactor * opening
	maxReasonable := opening

	rounds := len(n.Offers)
	concession := baseConcession - concessionDecay*float64(rounds-1)
	concession = clamp(concession, minConcession, maxConcession)

	var recommended float64
	if actor == models.ActorUser {
		// Move up from the user's standing position toward the organizer.
		base := minAcceptable
		for _, offer := range n.Offers {
			if offer.Actor == models.ActorUser {
				base = offer.Amount
			}
		}
		recommended = base * (1 + concession)
	} else {
		// Concede down from the current standing amount.
		recommended = n.CurrentAmount * (1 - concession)
	}
	recommended = clamp(recommended, minAcceptable, maxReasonable)

	// The closer the recommendation sits to the other side's standing
	// amount, the likelier it lands.
	gap := n.CurrentAmount - recommended
	if gap < 0 {
		gap = -gap
	}
	likelihood := clamp(1-gap/opening, 0, 1)

	strategy := "conservative"
	switch {
	case likelihood > aggressiveCutoff:
		strategy = "aggressive"
	case likelihood > balancedCutoff:
		strategy = "balanced"
	}

	confidence := "low"
	switch {
	case rounds > historyForHigh:
		confidence = "high"
	case rounds > historyForMedium:
		confidence = "medium"
	}

	return &models.CounterAdvice{
		RecommendedAmount: recommended,
		MinAcceptable:     minAcceptable,
		MaxReasonable:     maxReasonable,
		ConcessionRate:    concession,
		Strategy:          strategy,
		Confidence:        confidence,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
