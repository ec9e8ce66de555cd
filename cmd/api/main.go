package main

import (
	"context"
	"log"

	"courier-backoffice/internal/core/cache"
	"courier-backoffice/internal/core/config"
	"courier-backoffice/internal/core/logger"
	"courier-backoffice/internal/core/server"
	fleetadapters "courier-backoffice/internal/features/fleet/adapters"
	fleethandler "courier-backoffice/internal/features/fleet/handler"
	"courier-backoffice/internal/features/fleet/ports"
	fleetservice "courier-backoffice/internal/features/fleet/service"

	"go.uber.org/zap"
)

// @title Courier Back-Office API
// @version 1.0
// @description Fleet allocation API for the courier back-office dashboard.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// The allocation ledger lives in Redis; without it the engine cannot
	// record or replay allocation state.
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis is not reachable", zap.Error(err))
	}
	l.Info("Redis connection verified")

	overlayRepo := fleetadapters.NewRedisOverlayRepository(redisCache)

	// Data source: remote backend with transparent sample fallback, or the
	// sample dataset alone when no backend is configured.
	var source ports.DataSource
	sample := fleetadapters.NewSampleDataSource()
	if cfg.Backend.URL != "" {
		source = fleetadapters.NewFallbackDataSource(fleetadapters.NewRESTDataSource(cfg.Backend), sample)
		l.Info("Fleet backend configured", zap.String("url", cfg.Backend.URL))
	} else {
		source = sample
		l.Info("No fleet backend configured, serving sample dataset")
	}

	fleetSvc := fleetservice.NewFleetService(source, overlayRepo)
	if err := fleetSvc.Refresh(context.Background()); err != nil {
		l.Fatal("Initial fleet refresh failed", zap.Error(err))
	}

	fleetHdl := fleethandler.NewFleetHandler(fleetSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/consignments", fleetHdl.ListConsignments)
	srv.App.Post("/consignments", fleetHdl.CreateConsignment)
	srv.App.Get("/trucks", fleetHdl.ListTrucks)
	srv.App.Post("/trucks", fleetHdl.CreateTruck)
	srv.App.Post("/consignments/:id/allocate", fleetHdl.AllocateTruck)
	srv.App.Post("/consignments/:id/delivered", fleetHdl.MarkDelivered)
	srv.App.Post("/trucks/:id/available", fleetHdl.MarkTruckAvailable)
	srv.App.Post("/refresh", fleetHdl.Refresh)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
