package handlers

import (
	"net/http"
	"strconv"

	"eventify/models"
	"eventify/services/negotiation"
	"eventify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NegotiationHandler serves the negotiation lifecycle endpoints.
type NegotiationHandler struct {
	Service negotiation.NegotiationService
	Logger  *zap.Logger
}

func NewNegotiationHandler(svc negotiation.NegotiationService, logger *zap.Logger) *NegotiationHandler {
	return &NegotiationHandler{Service: svc, Logger: logger}
}

// StartHandler opens a negotiation with the organizer's opening offer.
func (h *NegotiationHandler) StartHandler(c *gin.Context) {
	var input struct {
		EventRequestID   string  `json:"eventRequestId"`
		OrganizerID      string  `json:"organizerId"`
		UserID           string  `json:"userId"`
		OrganizerOffer   float64 `json:"organizerOffer"`
		OrganizerMessage string  `json:"organizerMessage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid input: "+err.Error())
		return
	}

	n, err := h.Service.Start(c.Request.Context(),
		input.EventRequestID, input.OrganizerID, input.UserID,
		input.OrganizerOffer, input.OrganizerMessage)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negotiation": n})
}

// CounterHandler appends a counter-offer. The actor defaults to the user;
// organizer-side tooling passes actor explicitly.
func (h *NegotiationHandler) CounterHandler(c *gin.Context) {
	var input struct {
		Actor       string  `json:"actor"`
		UserOffer   float64 `json:"userOffer"`
		Amount      float64 `json:"amount"`
		UserMessage string  `json:"userMessage"`
		Message     string  `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid input: "+err.Error())
		return
	}

	actor := input.Actor
	if actor == "" {
		actor = models.ActorUser
	}
	amount := input.Amount
	if amount == 0 {
		amount = input.UserOffer
	}
	message := input.Message
	if message == "" {
		message = input.UserMessage
	}

	n, err := h.Service.Counter(c.Request.Context(), c.Param("id"), actor, amount, message)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negotiation": n})
}

// AcceptHandler closes the negotiation at the current amount.
func (h *NegotiationHandler) AcceptHandler(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	// The body is optional for accept.
	_ = c.ShouldBindJSON(&input)

	n, err := h.Service.Accept(c.Request.Context(), c.Param("id"), input.UserID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negotiation": n})
}

// RejectHandler closes the negotiation without agreement.
func (h *NegotiationHandler) RejectHandler(c *gin.Context) {
	var input struct {
		Actor string `json:"actor"`
	}
	_ = c.ShouldBindJSON(&input)
	if input.Actor == "" {
		input.Actor = models.ActorUser
	}

	n, err := h.Service.Reject(c.Request.Context(), c.Param("id"), input.Actor)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negotiation": n})
}

// StatusHandler returns the negotiation, lazily expiring it when overdue.
func (h *NegotiationHandler) StatusHandler(c *gin.Context) {
	n, err := h.Service.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "negotiation": n})
}

// AdviceHandler returns heuristic counter-offer guidance for an actor.
func (h *NegotiationHandler) AdviceHandler(c *gin.Context) {
	actor := c.DefaultQuery("actor", models.ActorUser)

	advice, err := h.Service.Advise(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "advice": advice})
}

// PriceAnalysisHandler runs the budget analyzer over query parameters.
func (h *NegotiationHandler) PriceAnalysisHandler(c *gin.Context) {
	budget, _ := strconv.ParseFloat(c.Query("budget"), 64)
	analysis := h.Service.PriceAnalysis(c.Query("eventType"), c.Query("location"), budget)

	c.JSON(http.StatusOK, gin.H{"success": true, "budgetAnalysis": analysis})
}
