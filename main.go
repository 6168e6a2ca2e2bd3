package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cottage-backend/config"
	"cottage-backend/controllers"
	"cottage-backend/routes"
	"cottage-backend/services"
	"cottage-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	config.LoadConfig()
	utils.InitializeLogger(config.GetEnv())
	logger := utils.GetLogger()
	defer logger.Sync()

	// Persisted store: MySQL when configured, otherwise in-memory for local
	// runs (state then lives only as long as the process).
	var store services.Store
	if config.HasDatabaseConfig() {
		if err := config.ConnectDatabase(); err != nil {
			logger.Fatal("database connect failed", zap.Error(err))
		}
		store = services.NewDBStore(config.DB)
		logger.Info("persisted store backed by MySQL")
	} else {
		store = services.NewMemoryStore()
		logger.Warn("no database configured, using in-memory store")
	}

	// Initialize services
	catalogService, err := services.NewCatalogService(store, logger)
	if err != nil {
		logger.Fatal("catalog initialization failed", zap.Error(err))
	}
	notifyService := services.NewNotifyService(config.AppConfig.MessagingHost, config.AppConfig.OwnerPhone, logger)
	cartService := services.NewCartService(store, catalogService, notifyService, logger)

	// Initialize controllers
	roomController := controllers.NewRoomController(catalogService)
	amenityController := controllers.NewAmenityController(catalogService)
	galleryController := controllers.NewGalleryController(catalogService)
	pricingController := controllers.NewPricingController(catalogService)
	bookingController := controllers.NewBookingController(cartService, catalogService)
	cartController := controllers.NewCartController(cartService)
	notifyController := controllers.NewNotifyController(notifyService, catalogService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		amenityController,
		galleryController,
		pricingController,
		bookingController,
		cartController,
		notifyController,
		config.AppConfig.CorsOrigins,
		logger,
	)

	addr := ":" + config.AppConfig.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
