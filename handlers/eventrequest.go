package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	organizerRepoPkg "eventify/database/repository/organizer"
	"eventify/config"
	"eventify/models"
	"eventify/services/extraction"
	"eventify/services/matching"
	"eventify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventRequestHandler serves the request-intake endpoints: free-text intake
// with extraction, and parameterized suggestions that bypass the extractor.
type EventRequestHandler struct {
	Extraction extraction.ExtractionService
	Matcher    matching.MatchingService
	Budget     matching.BudgetAnalyzer
	Organizers organizerRepoPkg.OrganizerRepository
	Cache      *redis.Client
	Logger     *zap.Logger
}

func NewEventRequestHandler(
	ext extraction.ExtractionService,
	matcher matching.MatchingService,
	budget matching.BudgetAnalyzer,
	organizers organizerRepoPkg.OrganizerRepository,
	cache *redis.Client,
	logger *zap.Logger,
) *EventRequestHandler {
	return &EventRequestHandler{
		Extraction: ext,
		Matcher:    matcher,
		Budget:     budget,
		Organizers: organizers,
		Cache:      cache,
		Logger:     logger,
	}
}

// eventRequestSession is the cached match response, retrievable under the
// generated eventRequestId until the session TTL lapses.
type eventRequestSession struct {
	EventRequestID string                `json:"eventRequestId"`
	UserID         string                `json:"userId,omitempty"`
	Demand         models.Demand         `json:"demand"`
	Matches        []models.MatchResult  `json:"matches"`
	BudgetAnalysis models.BudgetAnalysis `json:"budgetAnalysis"`
	Extractor      string                `json:"extractor"`
}

// ProcessHandler ingests a free-text event request, extracts a structured
// demand, matches organizers and returns the full analysis.
func (h *EventRequestHandler) ProcessHandler(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
		// Legacy clients send the free text under "description".
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid input: "+err.Error())
		return
	}

	text := input.Text
	if text == "" {
		text = input.Description
	}
	if text == "" {
		utils.RespondDomainError(c, models.ValidationError{Field: "text", Reason: "required"})
		return
	}

	ctx := c.Request.Context()
	demand, extractor := h.Extraction.Extract(ctx, text)

	organizers := h.lookupOrganizers(demand)
	matches := h.Matcher.Match(demand, organizers)
	analysis := h.Budget.Analyze(demand)

	session := eventRequestSession{
		EventRequestID: uuid.New().String(),
		UserID:         input.UserID,
		Demand:         demand,
		Matches:        matches,
		BudgetAnalysis: analysis,
		Extractor:      extractor,
	}
	h.cacheSession(c, session)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"eventRequestId": session.EventRequestID,
		"demand":         demand,
		"matches":        matches,
		"budgetAnalysis": analysis,
		"extractor":      extractor,
	})
}

// SuggestionsHandler returns matches for an already-structured demand passed
// as query parameters. No extraction happens on this path.
func (h *EventRequestHandler) SuggestionsHandler(c *gin.Context) {
	eventType := c.Query("eventType")
	if eventType == "" {
		eventType = "general"
	}
	budget, _ := strconv.ParseFloat(c.Query("budget"), 64)

	demand := models.Demand{
		EventType: eventType,
		Budget:    budget,
		Date:      c.Query("date"),
	}
	if location := c.Query("location"); location != "" {
		demand.Locations = []string{location}
	}

	organizers := h.lookupOrganizers(demand)
	matches := h.Matcher.Match(demand, organizers)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}

// lookupOrganizers queries the catalog for the demand's event type and first
// location. Catalog failures degrade to an empty candidate set; the matcher
// synthesizes a fallback entry so the response stays actionable.
func (h *EventRequestHandler) lookupOrganizers(demand models.Demand) []models.OrganizerProfile {
	criteria := organizerRepoPkg.OrganizerSearchCriteria{EventType: demand.EventType}
	if len(demand.Locations) > 0 && demand.Locations[0] != "unknown" {
		criteria.Location = demand.Locations[0]
	}

	organizers, err := h.Organizers.Search(criteria)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("organizer catalog lookup failed", zap.Error(err))
		}
		return nil
	}
	return organizers
}

func (h *EventRequestHandler) cacheSession(c *gin.Context, session eventRequestSession) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	key := "eventrequest:" + session.EventRequestID
	if err := h.Cache.Set(c.Request.Context(), key, data, config.EventRequestTTL()).Err(); err != nil && h.Logger != nil {
		h.Logger.Warn("failed to cache event-request session",
			zap.String("eventRequestId", session.EventRequestID),
			zap.Error(err))
	}
}
