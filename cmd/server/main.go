package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cornndawwg/icatalyst-production-sub001/config"
	httpDelivery "github.com/cornndawwg/icatalyst-production-sub001/internal/delivery/http"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/infrastructure/cache"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/infrastructure/catalog"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/infrastructure/classify"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/infrastructure/perfstore"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/registry"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting iCatalyst Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Persona registry: built-in tables, or a file when configured
	reg := registry.NewDefault()
	if cfg.Detection.RegistryFile != "" {
		reg, err = registry.LoadFile(cfg.Detection.RegistryFile)
		if err != nil {
			log.Fatalf("Failed to load persona registry from %s: %v", cfg.Detection.RegistryFile, err)
		}
		log.Printf("Persona registry loaded from %s", cfg.Detection.RegistryFile)
	}
	log.Printf("Personas registered: %d (default: %s)", len(reg.Personas()), reg.DefaultPersona().Name)

	// Catalog store, seeded when empty
	catalogStore, err := catalog.NewStore(cfg.Catalog.DBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer catalogStore.Close()
	if err := seedCatalog(catalogStore, cfg.Catalog.SeedFile); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Performance store is optional
	var perfSink domain.PerformanceStore
	if cfg.PerfStore.Enabled {
		store, err := perfstore.NewStore(cfg.PerfStore.DBPath)
		if err != nil {
			log.Fatalf("Failed to open performance store: %v", err)
		}
		defer store.Close()
		perfSink = store
		log.Printf("Performance store: %s", cfg.PerfStore.DBPath)
	}

	// External classifier is optional; detection degrades to rule-based only
	var external domain.ExternalClassifier
	var detectionCache domain.DetectionCache
	if cfg.External.Enabled {
		client := classify.NewClient(cfg.External.APIKey, cfg.External.BaseURL, cfg.External.Timeout, cfg.External.RatePerSecond)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		external = client
		detectionCache = cache.NewMemoryCache()
		log.Printf("External classifier configured: %s (timeout: %s)", cfg.External.BaseURL, cfg.External.Timeout)
	} else {
		log.Printf("External classifier disabled - rule-based detection only")
	}

	// Initialize usecase layer
	detectionService := usecase.NewDetectionService(reg, external, detectionCache, usecase.DetectionServiceConfig{
		Resolver: usecase.ResolverConfig{
			CalibrationConstant: cfg.Detection.CalibrationConstant,
			ExternalMargin:      cfg.Detection.ExternalMargin,
			FallbackConfidence:  cfg.Detection.FallbackConfidence,
		},
		ExternalTimeout: cfg.External.Timeout,
		CacheTTL:        cfg.External.CacheTTL,
	})
	recommendationService := usecase.NewRecommendationService(reg, catalogStore, detectionService)
	tracker := usecase.NewAccuracyTracker(perfSink)

	log.Printf("Detection: calibration=%.1f, external_margin=%.2f",
		cfg.Detection.CalibrationConstant, cfg.Detection.ExternalMargin)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(detectionService, recommendationService, tracker)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedCatalog fills an empty catalog from the configured seed file, or the
// built-in seed when none is set. A populated catalog is left untouched.
func seedCatalog(store *catalog.Store, seedFile string) error {
	ctx := context.Background()

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Catalog ready: %d items", count)
		return nil
	}

	if seedFile != "" {
		if err := store.SeedFromFile(ctx, seedFile); err != nil {
			return err
		}
		log.Printf("Catalog seeded from %s", seedFile)
		return nil
	}

	if err := store.InsertItems(ctx, catalog.SeedItems()); err != nil {
		return err
	}
	log.Printf("Catalog seeded with built-in items")
	return nil
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
