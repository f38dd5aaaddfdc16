// Package main is the entry point for the Itinerary Planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/itinerary-planner/backend/internal/catalog"
	"github.com/pkordes/itinerary-planner/backend/internal/config"
	"github.com/pkordes/itinerary-planner/backend/internal/export"
	"github.com/pkordes/itinerary-planner/backend/internal/handler"
	"github.com/pkordes/itinerary-planner/backend/internal/itinerary"
	"github.com/pkordes/itinerary-planner/backend/internal/middleware"
	"github.com/pkordes/itinerary-planner/backend/internal/repo"
	"github.com/pkordes/itinerary-planner/backend/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	// The catalog is embedded in the binary; a load failure means a bad build.
	cat, err := catalog.New()
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "curated_destinations", len(cat.CuratedDestinations()))

	// --- Services ---------------------------------------------------------
	trips := repo.NewItineraryRepo(nil)
	itineraries := service.NewItineraryService(trips, itinerary.NewGenerator(cat, nil), cfg.MaxTripDays, logger)
	exports := service.NewExportService(trips, repo.NewExportJobRepo(nil), export.NewPDFRenderer(), nil, logger)
	srvHandler := handler.NewServer(itineraries, exports, service.NewCatalogService(cat), logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → MaxBodySize.
	// RealIP must run before the export rate limiter, which keys on RemoteAddr.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	limiter := middleware.NewRateLimiter(cfg.ExportRatePerMinute)
	r.Mount("/", srvHandler.Routes(limiter.Limit))

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout leaves room for rendering long itineraries to PDF.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	// Background exports hold no external resources, but let them finish so
	// their outcome is logged.
	exports.Wait()
	slog.Info("server stopped")
}
