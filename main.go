package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventify/config"
	"eventify/cron"
	"eventify/database"
	negotiationRepo "eventify/database/repository/negotiation"
	organizerRepo "eventify/database/repository/organizer"
	"eventify/handlers"
	"eventify/middleware"
	"eventify/routes"
	"eventify/services/extraction"
	"eventify/services/matching"
	"eventify/services/negotiation"
	"eventify/services/tasks"
	"eventify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	// repositories.
	orgRepo := organizerRepo.NewMongoOrganizerRepo()
	negRepo := negotiationRepo.NewMongoNegotiationRepo()
	if r, ok := orgRepo.(*organizerRepo.MongoOrganizerRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure organizer indexes: %v", err)
		}
	}
	if r, ok := negRepo.(*negotiationRepo.MongoNegotiationRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure negotiation indexes: %v", err)
		}
	}

	// services.
	extractionService := extraction.NewDefaultExtractionService(
		extraction.NewGeminiExtractor(config.AppConfig.GeminiAPIKey),
		extraction.NewRuleBasedExtractor(),
		logger,
	)
	matchingService := matching.NewDefaultMatchingService()
	budgetAnalyzer := matching.NewDefaultBudgetAnalyzer()

	var scheduler negotiation.ExpiryScheduler
	if config.AppConfig.ExpiryWorkerEnabled {
		scheduler = tasks.NewAsynqExpiryScheduler()
	}
	negotiationService := &negotiation.DefaultNegotiationService{
		Repo:      negRepo,
		Budget:    budgetAnalyzer,
		Scheduler: scheduler,
		TTL:       config.NegotiationTTL(),
		Logger:    logger,
	}

	eventRequestHandler := handlers.NewEventRequestHandler(
		extractionService, matchingService, budgetAnalyzer,
		orgRepo, utils.GetCacheClient(), logger,
	)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		OrganizerRepo: orgRepo,

		ProcessEventRequestHandler: eventRequestHandler.ProcessHandler,
		SuggestionsHandler:         eventRequestHandler.SuggestionsHandler,

		StartNegotiationHandler:  negotiationHandler.StartHandler,
		CounterOfferHandler:      negotiationHandler.CounterHandler,
		AcceptNegotiationHandler: negotiationHandler.AcceptHandler,
		RejectNegotiationHandler: negotiationHandler.RejectHandler,
		NegotiationStatusHandler: negotiationHandler.StatusHandler,
		CounterAdviceHandler:     negotiationHandler.AdviceHandler,
		PriceAnalysisHandler:     negotiationHandler.PriceAnalysisHandler,
	}

	routes.SetupRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	if config.AppConfig.ExpiryWorkerEnabled {
		cron.InitExpiryWorker(negotiationService)
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}
	logger.Info("main: exited")
}
