// File: snabbit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"snabbit/config"
	"snabbit/database/catalog"
	"snabbit/database/history"
	"snabbit/handlers"
	"snabbit/middleware"
	"snabbit/routes"
	"snabbit/services/booking"
	"snabbit/services/chat"
	"snabbit/services/export"
	"snabbit/services/location"
	"snabbit/services/matching"
	"snabbit/services/user"
	"snabbit/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores. The catalog is fixed reference data; history and accounts live
	// in memory for the lifetime of the process.
	catalogStore := catalog.NewSeededCatalog()
	historyRepo := history.NewMemoryRepository()

	// Services.
	userService := user.NewDefaultUserService(utils.GetAuthCacheClient())

	matchingServiceInstance := &matching.DefaultMatchingService{
		Services:    catalogStore,
		Helpers:     catalogStore.Helpers(),
		CacheClient: utils.GetCacheClient(),
	}

	chatService := chat.NewMemoryService()

	bookingService := &booking.DefaultBookingSessionService{
		Services:    catalogStore,
		Helpers:     catalogStore.Helpers(),
		MatchingSvc: matchingServiceInstance,
		History:     historyRepo,
		CacheClient: utils.GetCacheClient(),
		ChatSvc:     chatService,
	}

	exportService := export.NewPDFService()

	var locationProvider location.Provider
	if config.AppConfig.LocationProvider == "ipapi" {
		locationProvider = location.NewIPAPIProvider()
	} else {
		locationProvider = location.NewStaticProvider()
	}

	// Handlers.
	authHandler := handlers.NewAuthHandler(userService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogStore, catalogStore.Helpers(), logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, userService, logger)
	chatHandler := handlers.NewChatHandler(chatService, bookingService, logger)
	exportHandler := handlers.NewExportHandler(bookingService, exportService, userService, logger)
	locationHandler := handlers.NewLocationHandler(locationProvider)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthCache: utils.GetAuthCacheClient(),

		// Auth endpoints.
		RegisterHandler:      authHandler.RegisterHandler,
		LoginHandler:         authHandler.LoginHandler,
		RevokeHandler:        authHandler.RevokeHandler,
		HelperProfileHandler: authHandler.HelperProfileHandler,

		// Catalog endpoints.
		ListServicesHandler: catalogHandler.ListServicesHandler,
		GetServiceHandler:   catalogHandler.GetServiceHandler,
		MatchHelpersHandler: catalogHandler.MatchHelpersHandler(matchingServiceInstance),

		// Booking endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		UpdateSession:   bookingHandler.UpdateSession,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,
		GetHistory:      bookingHandler.GetHistory,
		GetBooking:      bookingHandler.GetBooking,
		UpdateStatus:    bookingHandler.UpdateStatus,
		GetEarnings:     bookingHandler.GetEarnings,

		// Chat endpoints.
		GetChatThread:   chatHandler.GetThread,
		SendChatMessage: chatHandler.SendMessage,

		// Export endpoints.
		InvoicePDF: exportHandler.InvoicePDF,
		ReportPDF:  exportHandler.ReportPDF,

		// Location endpoint.
		ResolveLocation: locationHandler.ResolveHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
