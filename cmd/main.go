package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront_service/config"
	"storefront_service/internal/delivery"
	"storefront_service/internal/domain"
	"storefront_service/internal/repository"
	"storefront_service/internal/usecase"
	"storefront_service/pkg/db"
	"storefront_service/pkg/metrics"
)

const (
	serviceName     = "storefront"
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Starting Storefront Service...")

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// --- Store Connection ---
	var (
		database    *mongo.Database
		productRepo domain.ProductRepository
		cartRepo    domain.CartItemRepository
		diag        domain.Diagnostics
	)

	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			logger.Fatalf("FATAL: Failed to connect to database: %v", err)
		}
		logger.Info("Database connection established.")

		productRepo = repository.NewMongoProductRepository(database, logger)
		cartRepo = repository.NewMongoCartItemRepository(database, logger)
		diag = repository.NewMongoDiagnostics(database)
	} else {
		store := repository.NewMemoryStore()
		productRepo = store
		cartRepo = store
		diag = store
		logger.Warn("Running with in-memory store; data will not survive a restart")
	}

	// --- Dependency Injection ---
	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, logger)
	cartHandler := delivery.NewCartHandler(cartUseCase, logger)
	metaHandler := delivery.NewMetaHandler(diag, logger)
	logger.Info("Handlers initialized.")

	httpMetrics := metrics.New()

	// --- Router Setup ---
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS settings
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(delivery.RequestID())
	router.Use(delivery.RequestLogger(logger))
	router.Use(httpMetrics.Middleware(serviceName))

	// Route Registration
	router.GET("/metrics", httpMetrics.Handler())
	metaHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Infof("Shutdown signal received: %s", sig)
	case err := <-errCh:
		logger.Fatalf("Failed to start server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	if err := db.Disconnect(ctx, database); err != nil {
		logger.Errorf("Database disconnect error: %v", err)
	}
	logger.Info("Server stopped.")
}
