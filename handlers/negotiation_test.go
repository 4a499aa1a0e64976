package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventify/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNegotiationService returns canned results per method.
type stubNegotiationService struct {
	negotiation *models.Negotiation
	advice      *models.CounterAdvice
	err         error
}

func (s *stubNegotiationService) Start(ctx context.Context, eventRequestID, organizerID, userID string, offer float64, message string) (*models.Negotiation, error) {
	return s.negotiation, s.err
}

func (s *stubNegotiationService) Counter(ctx context.Context, negotiationID, actor string, amount float64, message string) (*models.Negotiation, error) {
	return s.negotiation, s.err
}

func (s *stubNegotiationService) Accept(ctx context.Context, negotiationID, userID string) (*models.Negotiation, error) {
	return s.negotiation, s.err
}

func (s *stubNegotiationService) Reject(ctx context.Context, negotiationID, actor string) (*models.Negotiation, error) {
	return s.negotiation, s.err
}

func (s *stubNegotiationService) GetStatus(ctx context.Context, negotiationID string) (*models.Negotiation, error) {
	return s.negotiation, s.err
}

func (s *stubNegotiationService) Advise(ctx context.Context, negotiationID, actor string) (*models.CounterAdvice, error) {
	return s.advice, s.err
}

func (s *stubNegotiationService) PriceAnalysis(eventType, location string, budget float64) models.BudgetAnalysis {
	return models.BudgetAnalysis{UserBudget: budget, Feasibility: models.FeasibilityGood}
}

func negotiationRouter(svc *stubNegotiationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNegotiationHandler(svc, nil)

	r := gin.New()
	r.POST("/api/negotiations", h.StartHandler)
	r.POST("/api/negotiations/:id/counter", h.CounterHandler)
	r.POST("/api/negotiations/:id/accept", h.AcceptHandler)
	r.POST("/api/negotiations/:id/reject", h.RejectHandler)
	r.GET("/api/negotiations/:id/status", h.StatusHandler)
	r.GET("/api/negotiations/:id/advice", h.AdviceHandler)
	r.GET("/api/negotiations/price-analysis", h.PriceAnalysisHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartHandlerSuccess(t *testing.T) {
	svc := &stubNegotiationService{negotiation: &models.Negotiation{
		ID:            "n1",
		Status:        models.NegotiationStarted,
		CurrentAmount: 400000,
		ExpiresAt:     time.Now().Add(48 * time.Hour),
	}}
	r := negotiationRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/negotiations", gin.H{
		"eventRequestId": "req-1",
		"organizerId":    "org-1",
		"organizerOffer": 400000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool               `json:"success"`
		Negotiation models.Negotiation `json:"negotiation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "n1", resp.Negotiation.ID)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", models.ValidationError{Field: "amount", Reason: "required"}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"not found", models.NotFoundError{Resource: "negotiation", ID: "x"}, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", models.ConflictError{Reason: "lost race"}, http.StatusConflict, "CONFLICT"},
		{"invalid state", models.InvalidStateError{NegotiationID: "x", Reason: "closed"}, http.StatusConflict, "INVALID_STATE"},
		{"expired", models.ExpiredError{NegotiationID: "x"}, http.StatusGone, "EXPIRED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := negotiationRouter(&stubNegotiationService{err: tt.err})

			w := doJSON(t, r, http.MethodPost, "/api/negotiations/n1/counter", gin.H{"userOffer": 300000})
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
				Code    string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestAdviceHandler(t *testing.T) {
	svc := &stubNegotiationService{advice: &models.CounterAdvice{
		RecommendedAmount: 336000,
		MinAcceptable:     280000,
		MaxReasonable:     400000,
		ConcessionRate:    0.2,
		Strategy:          "aggressive",
		Confidence:        "low",
	}}
	r := negotiationRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/negotiations/n1/advice?actor=user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Advice  models.CounterAdvice `json:"advice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "aggressive", resp.Advice.Strategy)
}

func TestPriceAnalysisHandler(t *testing.T) {
	r := negotiationRouter(&stubNegotiationService{})

	w := doJSON(t, r, http.MethodGet, "/api/negotiations/price-analysis?eventType=wedding&budget=200000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success        bool                  `json:"success"`
		BudgetAnalysis models.BudgetAnalysis `json:"budgetAnalysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, float64(200000), resp.BudgetAnalysis.UserBudget)
}
