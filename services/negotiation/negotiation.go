package negotiation

import (
	"context"
	"time"

	negotiationRepo "eventify/database/repository/negotiation"
	"eventify/models"
	"eventify/services/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNegotiationService implements NegotiationService. It holds no
// negotiation state of its own; everything lives in the registry and every
// transition is a read-validate-CAS-write cycle.
type DefaultNegotiationService struct {
	Repo      negotiationRepo.NegotiationRepository
	Budget    matching.BudgetAnalyzer
	Scheduler ExpiryScheduler
	TTL       time.Duration
	Logger    *zap.Logger
}

func (s *DefaultNegotiationService) Start(ctx context.Context, eventRequestID, organizerID, userID string, offer float64, message string) (*models.Negotiation, error) {
	switch {
	case eventRequestID == "":
		return nil, models.ValidationError{Field: "eventRequestId", Reason: "required"}
	case organizerID == "":
		return nil, models.ValidationError{Field: "organizerId", Reason: "required"}
	case offer <= 0:
		return nil, models.ValidationError{Field: "organizerOffer", Reason: "must be a positive amount"}
	}

	now := time.Now()
	n := &models.Negotiation{
		ID:             uuid.New().String(),
		EventRequestID: eventRequestID,
		OrganizerID:    organizerID,
		UserID:         userID,
		Status:         models.NegotiationStarted,
		Offers: []models.Offer{{
			Actor:     models.ActorOrganizer,
			Amount:    offer,
			Message:   message,
			Timestamp: now,
		}},
		CurrentAmount: offer,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.TTL),
	}

	if err := s.Repo.Insert(ctx, n); err != nil {
		return nil, err
	}

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleExpiry(n.ID, n.ExpiresAt); err != nil && s.Logger != nil {
			// The sweep is an optimization; lazy expiry still covers this
			// negotiation.
			s.Logger.Warn("failed to schedule expiry sweep",
				zap.String("negotiationId", n.ID),
				zap.Error(err))
		}
	}
	return n, nil
}

func (s *DefaultNegotiationService) Counter(ctx context.Context, negotiationID, actor string, amount float64, message string) (*models.Negotiation, error) {
	if actor != models.ActorUser && actor != models.ActorOrganizer {
		return nil, models.ValidationError{Field: "actor", Reason: "must be \"user\" or \"organizer\""}
	}
	if amount <= 0 {
		return nil, models.ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}

	n, err := s.loadLive(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if last := n.LastOffer(); last != nil && last.Actor == actor {
		return nil, models.InvalidStateError{
			NegotiationID: negotiationID,
			Reason:        "cannot counter your own offer; awaiting the other party",
		}
	}

	expectedVersion := n.Version
	n.Offers = append(n.Offers, models.Offer{
		Actor:     actor,
		Amount:    amount,
		Message:   message,
		Timestamp: time.Now(),
	})
	n.CurrentAmount = amount
	if actor == models.ActorUser {
		n.Status = models.NegotiationUserCountered
	} else {
		n.Status = models.NegotiationOrganizerCountered
	}

	if err := s.Repo.Update(ctx, n, expectedVersion); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *DefaultNegotiationService) Accept(ctx context.Context, negotiationID, userID string) (*models.Negotiation, error) {
	return s.close(ctx, negotiationID, models.NegotiationAccepted)
}

func (s *DefaultNegotiationService) Reject(ctx context.Context, negotiationID, actor string) (*models.Negotiation, error) {
	return s.close(ctx, negotiationID, models.NegotiationRejected)
}

// close moves a live negotiation into a terminal state, freezing
// CurrentAmount at the most recent offer.
func (s *DefaultNegotiationService) close(ctx context.Context, negotiationID, status string) (*models.Negotiation, error) {
	n, err := s.loadLive(ctx, negotiationID)
	if err != nil {
		return nil, err
	}

	expectedVersion := n.Version
	n.Status = status
	if err := s.Repo.Update(ctx, n, expectedVersion); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *DefaultNegotiationService) GetStatus(ctx context.Context, negotiationID string) (*models.Negotiation, error) {
	n, err := s.Repo.GetByID(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if expired, err := s.expireIfDue(ctx, n); err != nil {
		return nil, err
	} else if expired {
		// Re-read so the caller sees the stored terminal record.
		return s.Repo.GetByID(ctx, negotiationID)
	}
	return n, nil
}

func (s *DefaultNegotiationService) PriceAnalysis(eventType, location string, budget float64) models.BudgetAnalysis {
	demand := models.Demand{
		EventType: eventType,
		Locations: []string{location},
		Budget:    budget,
	}
	return s.Budget.Analyze(demand)
}

// loadLive fetches a negotiation and enforces the shared transition guards:
// the id must exist, the deadline must not have passed, and the negotiation
// must not already be terminal.
func (s *DefaultNegotiationService) loadLive(ctx context.Context, negotiationID string) (*models.Negotiation, error) {
	n, err := s.Repo.GetByID(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if expired, err := s.expireIfDue(ctx, n); err != nil {
		return nil, err
	} else if expired {
		return nil, models.ExpiredError{NegotiationID: negotiationID}
	}
	if n.Terminal() {
		return nil, models.InvalidStateError{
			NegotiationID: negotiationID,
			Reason:        "negotiation is closed (" + n.Status + ")",
		}
	}
	return n, nil
}

// expireIfDue flips a live negotiation whose deadline passed to EXPIRED.
// The expiresAt field is authoritative over the stored status, so a lost CAS
// race here just means another request already recorded the expiry.
func (s *DefaultNegotiationService) expireIfDue(ctx context.Context, n *models.Negotiation) (bool, error) {
	if n.Terminal() || time.Now().Before(n.ExpiresAt) {
		return false, nil
	}

	expectedVersion := n.Version
	n.Status = models.NegotiationExpired
	if err := s.Repo.Update(ctx, n, expectedVersion); err != nil {
		if _, ok := err.(models.ConflictError); ok {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
