package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"aqua-backend/internal/backup"
	"aqua-backend/internal/config"
	"aqua-backend/internal/handlers"
	"aqua-backend/internal/health"
	h "aqua-backend/internal/http"
	"aqua-backend/internal/middleware"
	"aqua-backend/internal/services"
	"aqua-backend/internal/storage"
	"aqua-backend/internal/store"
)

// openBackend builds the persistence backend from config. Redis is
// the production choice; a Redis failure falls back to the file
// backend so the server still comes up with durable storage.
func openBackend(cfg *config.Config) storage.Backend {
	switch cfg.Storage.Backend {
	case "redis":
		backend, err := storage.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			log.Printf("[Redis] Connected to %s", cfg.Redis.Addr)
			return backend
		}
		log.Printf("[Redis] Connection failed: %v", err)
		log.Printf("[Storage] Falling back to file backend in %s", cfg.Storage.DataDir)
		fallthrough
	case "file":
		backend, err := storage.NewFile(cfg.Storage.DataDir)
		if err == nil {
			return backend
		}
		log.Printf("[Storage] File backend failed: %v", err)
		log.Printf("[Storage] Falling back to in-memory backend, data will not survive restarts")
		fallthrough
	default:
		return storage.NewMemory()
	}
}

func main() {
	var port int
	flag.IntVar(&port, "port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if port > 0 {
		cfg.Server.Port = port
	}

	backend := openBackend(cfg)
	log.Printf("[Storage] Using %s backend", backend.Name())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	st, err := store.Open(ctx, backend)
	cancel()
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}

	// Services
	customerService := services.NewCustomerService(st)
	partyService := services.NewPartyService(st)
	productService := services.NewProductService(st)
	saleService := services.NewSaleService(st, cfg.Sales.TaxRate)
	fishBoxService := services.NewFishBoxService(st)
	analyticsService := services.NewAnalyticsService(st)
	collectionService := services.NewCollectionService(st)
	receivableService := services.NewReceivableService(st)
	statementService := services.NewStatementService(st)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	partyHandler := handlers.NewPartyHandler(partyService)
	productHandler := handlers.NewProductHandler(productService)
	saleHandler := handlers.NewSaleHandler(saleService, analyticsService)
	fishBoxHandler := handlers.NewFishBoxHandler(fishBoxService)
	reportHandler := handlers.NewReportHandler(analyticsService, collectionService, receivableService)
	statementHandler := handlers.NewStatementHandler(statementService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(backend))

	router := h.NewRouter(
		customerHandler,
		partyHandler,
		productHandler,
		saleHandler,
		fishBoxHandler,
		reportHandler,
		statementHandler,
		healthHandler,
	)

	// Periodic snapshot backups to S3-compatible storage
	if cfg.Backup.Enabled {
		uploader, err := backup.NewUploader(cfg, st)
		if err != nil {
			log.Printf("[Backup] Disabled: %v", err)
		} else {
			uploader.Start()
			defer uploader.Stop()
		}
	}

	// Wrap with panic recovery and metrics middleware
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
