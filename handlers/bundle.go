package handlers

import (
	organizerRepoPkg "eventify/database/repository/organizer"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	OrganizerRepo organizerRepoPkg.OrganizerRepository

	// Event-request endpoints
	ProcessEventRequestHandler gin.HandlerFunc
	SuggestionsHandler         gin.HandlerFunc

	// Negotiation endpoints
	StartNegotiationHandler   gin.HandlerFunc
	CounterOfferHandler       gin.HandlerFunc
	AcceptNegotiationHandler  gin.HandlerFunc
	RejectNegotiationHandler  gin.HandlerFunc
	NegotiationStatusHandler  gin.HandlerFunc
	CounterAdviceHandler      gin.HandlerFunc
	PriceAnalysisHandler      gin.HandlerFunc
}
