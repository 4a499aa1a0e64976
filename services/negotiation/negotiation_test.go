package negotiation

import (
	"context"
	"testing"
	"time"

	negotiationRepo "eventify/database/repository/negotiation"
	"eventify/models"
	"eventify/services/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultNegotiationService, *negotiationRepo.MemoryNegotiationRepo) {
	repo := negotiationRepo.NewMemoryNegotiationRepo()
	svc := &DefaultNegotiationService{
		Repo:   repo,
		Budget: matching.NewDefaultBudgetAnalyzer(),
		TTL:    48 * time.Hour,
	}
	return svc, repo
}

func TestStart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "our opening offer")
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, models.NegotiationStarted, n.Status)
	assert.Equal(t, float64(400000), n.CurrentAmount)
	require.Len(t, n.Offers, 1)
	assert.Equal(t, models.ActorOrganizer, n.Offers[0].Actor)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), n.ExpiresAt, time.Minute)
}

func TestStartValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name           string
		eventRequestID string
		organizerID    string
		offer          float64
	}{
		{name: "missing event request", organizerID: "org-1", offer: 100},
		{name: "missing organizer", eventRequestID: "req-1", offer: 100},
		{name: "zero offer", eventRequestID: "req-1", organizerID: "org-1", offer: 0},
		{name: "negative offer", eventRequestID: "req-1", organizerID: "org-1", offer: -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Start(ctx, tt.eventRequestID, tt.organizerID, "user-1", tt.offer, "")
			assert.IsType(t, models.ValidationError{}, err)
		})
	}
}

func TestStartDuplicateActivePairConflicts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "")
	require.NoError(t, err)

	_, err = svc.Start(ctx, "req-1", "org-1", "user-1", 380000, "")
	assert.IsType(t, models.ConflictError{}, err)

	// A different organizer for the same request is fine.
	_, err = svc.Start(ctx, "req-1", "org-2", "user-1", 350000, "")
	assert.NoError(t, err)
}

func TestCounterAlternation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "")
	require.NoError(t, err)

	n, err = svc.Counter(ctx, n.ID, models.ActorUser, 300000, "too high")
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationUserCountered, n.Status)
	assert.Equal(t, float64(300000), n.CurrentAmount)
	assert.Len(t, n.Offers, 2)

	// The user cannot counter its own standing offer.
	_, err = svc.Counter(ctx, n.ID, models.ActorUser, 290000, "")
	assert.IsType(t, models.InvalidStateError{}, err)

	n, err = svc.Counter(ctx, n.ID, models.ActorOrganizer, 350000, "meet in the middle")
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationOrganizerCountered, n.Status)
	assert.Equal(t, float64(350000), n.CurrentAmount)
	assert.Len(t, n.Offers, 3)
}

func TestCounterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "")
	require.NoError(t, err)

	_, err = svc.Counter(ctx, n.ID, "broker", 100000, "")
	assert.IsType(t, models.ValidationError{}, err)

	_, err = svc.Counter(ctx, n.ID, models.ActorUser, 0, "")
	assert.IsType(t, models.ValidationError{}, err)

	_, err = svc.Counter(ctx, "no-such-id", models.ActorUser, 100000, "")
	assert.IsType(t, models.NotFoundError{}, err)
}

func TestAcceptFreezesCurrentAmount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "")
	require.NoError(t, err)
	_, err = svc.Counter(ctx, n.ID, models.ActorUser, 300000, "")
	require.NoError(t, err)
	_, err = svc.Counter(ctx, n.ID, models.ActorOrganizer, 350000, "")
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, n.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationAccepted, accepted.Status)
	assert.Equal(t, float64(350000), accepted.CurrentAmount)
	assert.Len(t, accepted.Offers, 3)
}

func TestTerminalStatesAreFinal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "")
	require.NoError(t, err)
	_, err = svc.Accept(ctx, n.ID, "user-1")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, n.ID, "user-1")
	assert.IsType(t, models.InvalidStateError{}, err)
	_, err = svc.Reject(ctx, n.ID, models.ActorUser)
	assert.IsType(t, models.InvalidStateError{}, err)
	_, err = svc.Counter(ctx, n.ID, models.ActorUser, 300000, "")
	assert.IsType(t, models.InvalidStateError{}, err)

	// Reading a terminal negotiation stays fine.
	got, err := svc.GetStatus(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationAccepted, got.Status)
}

func TestReject(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Start(ctx, "req-1", "org-1", "user-1", 400000, "")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, n.ID, models.ActorUser)
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationRejected, rejected.Status)

	// A rejected pair frees the slot for a fresh negotiation.
	_, err = svc.Start(ctx, "req-1", "org-1", "user-1", 380000, "")
	assert.NoError(t, err)
}

func seedOverdue(t *testing.T, repo *negotiationRepo.MemoryNegotiationRepo, id string) {
	t.Helper()
	err := repo.Insert(context.Background(), &models.Negotiation{
		ID:             id,
		EventRequestID: "req-overdue",
		OrganizerID:    "org-1",
		UserID:         "user-1",
		Status:         models.NegotiationStarted,
		Offers: []models.Offer{{
			Actor:     models.ActorOrganizer,
			Amount:    400000,
			Timestamp: time.Now().Add(-72 * time.Hour),
		}},
		CurrentAmount: 400000,
		CreatedAt:     time.Now().Add(-72 * time.Hour),
		ExpiresAt:     time.Now().Add(-24 * time.Hour),
	})
	require.NoError(t, err)
}

func TestExpiryOnRead(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedOverdue(t, repo, "neg-overdue")

	got, err := svc.GetStatus(ctx, "neg-overdue")
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationExpired, got.Status)

	// The flip is persisted, not just reported.
	stored, err := repo.GetByID(ctx, "neg-overdue")
	require.NoError(t, err)
	assert.Equal(t, models.NegotiationExpired, stored.Status)
}

func TestTransitionsOnOverdueNegotiationExpire(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedOverdue(t, repo, "neg-overdue")

	_, err := svc.Counter(ctx, "neg-overdue", models.ActorUser, 300000, "")
	assert.IsType(t, models.ExpiredError{}, err)

	seedOverdue(t, repo, "neg-overdue-2")
	_, err = svc.Accept(ctx, "neg-overdue-2", "user-1")
	assert.IsType(t, models.ExpiredError{}, err)
}

func TestGetStatusUnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetStatus(context.Background(), "missing")
	assert.IsType(t, models.NotFoundError{}, err)
}

func TestPriceAnalysis(t *testing.T) {
	svc, _ := newTestService()

	analysis := svc.PriceAnalysis("wedding", "kathmandu", 200000)
	assert.Equal(t, models.FeasibilityGood, analysis.Feasibility)
	assert.InDelta(t, 240000, analysis.IndustryAverage, 0.001)

	analysis = svc.PriceAnalysis("party", "pokhara", 0)
	assert.Equal(t, models.FeasibilityUnknown, analysis.Feasibility)
}
