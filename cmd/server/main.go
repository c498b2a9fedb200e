package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mealflow/production-api/internal/config"
	"github.com/mealflow/production-api/internal/handlers"
	"github.com/mealflow/production-api/internal/middleware"
	"github.com/mealflow/production-api/internal/pipeline"
	"github.com/mealflow/production-api/internal/repository"
	"github.com/mealflow/production-api/internal/service"
	"github.com/mealflow/production-api/internal/webhook"
	"github.com/mealflow/production-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting production sheet api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"tag_match_policy", cfg.Pipeline.TagMatchPolicy,
	)

	// Initialize repositories
	orderRepo := repository.NewInMemoryOrderRepository()
	customerRepo := repository.NewInMemoryCustomerRepository()
	productRepo := repository.NewInMemoryProductRepository()

	// Initialize the processing pipeline
	match := pipeline.ExactMatch
	if cfg.Pipeline.TagMatchPolicy == "substring" {
		match = pipeline.SubstringMatch
	}
	pl := pipeline.New(
		pipeline.WithMatchPolicy(match),
		pipeline.WithLogger(log),
	)

	// Initialize services
	productionService := service.NewProductionService(orderRepo, customerRepo, productRepo, pl, log)

	// Initialize webhook dedupe
	dedupe := webhook.NewDeduper(cfg.Webhook.DedupeCapacity, cfg.Webhook.DedupeFPRate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	catalogHandler := handlers.NewCatalogHandler(productRepo, customerRepo, log)
	productionHandler := handlers.NewProductionHandler(productionService, orderRepo, log)
	webhookHandler := handlers.NewWebhookHandler(orderRepo, customerRepo, dedupe, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key", "X-Event-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", catalogHandler.ListProducts)
		r.Get("/product/{productId}", catalogHandler.GetProduct)
		r.Get("/customer", catalogHandler.ListCustomers)
		r.Get("/customer/{customerId}", catalogHandler.GetCustomer)

		// Pending orders
		r.Get("/order", productionHandler.ListPendingOrders)

		// Production sheet endpoints
		r.Post("/production-sheet", productionHandler.GenerateSheet)
		r.Get("/production-sheet", productionHandler.ListSheets)
		r.Get("/production-sheet/{sheetId}", productionHandler.GetSheet)
	})

	// Webhook routes require an API key
	r.Route("/webhooks", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))
		r.Post("/order-created", webhookHandler.OrderCreated)
		r.Post("/order-updated", webhookHandler.OrderUpdated)
		r.Post("/customer-created", webhookHandler.CustomerCreated)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
