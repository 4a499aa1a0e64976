package routes

import (
	"net/http"
	"time"

	"eventify/handlers"
	"eventify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterEventRequestRoutes registers request-intake endpoints.
func RegisterEventRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/event-requests")
	{
		api.POST("", hb.ProcessEventRequestHandler)
		api.GET("/suggestions", hb.SuggestionsHandler)
	}
}

// RegisterNegotiationRoutes registers the negotiation lifecycle endpoints.
func RegisterNegotiationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/negotiations")
	{
		api.GET("/price-analysis", hb.PriceAnalysisHandler)

		api.POST("", hb.StartNegotiationHandler)
		api.POST("/:id/counter", hb.CounterOfferHandler)
		api.POST("/:id/accept", hb.AcceptNegotiationHandler)
		api.POST("/:id/reject", hb.RejectNegotiationHandler)
		api.GET("/:id/status", hb.NegotiationStatusHandler)
		api.GET("/:id/advice", hb.CounterAdviceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// SetupRoutes configures CORS and registers all route groups.
func SetupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterEventRequestRoutes(r, hb)
	RegisterNegotiationRoutes(r, hb)
	RegisterHealthRoute(r)
}
