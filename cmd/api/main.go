// Package main provides the entrypoint for the Travel Planner API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/yvonnejhao/Travel-Planner/internal/api"
	"github.com/yvonnejhao/Travel-Planner/internal/api/middleware"
	"github.com/yvonnejhao/Travel-Planner/internal/database"
	geomaps "github.com/yvonnejhao/Travel-Planner/internal/geocoding/googlemaps"
	"github.com/yvonnejhao/Travel-Planner/internal/planner"
	"github.com/yvonnejhao/Travel-Planner/internal/planner/googlemaps"
	"github.com/yvonnejhao/Travel-Planner/internal/provider/resilience"
	"github.com/yvonnejhao/Travel-Planner/internal/telemetry"
	"github.com/yvonnejhao/Travel-Planner/internal/trip"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "travel-planner-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Travel Planner API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Initialize trip repository and service
	tripRepo := trip.NewPostgresRepository(pool)
	tripService := trip.NewService(tripRepo)
	log.Info().Msg("trip service initialized")

	// Provider registry tracks circuit breaker health for the ops endpoints
	registry := resilience.NewRegistry()

	// Initialize the directions provider
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set - route computation will fail")
	}

	directionsClient := googlemaps.NewClient(googlemaps.ClientConfig{
		APIKey:   apiKey,
		BaseURL:  os.Getenv("GOOGLE_MAPS_BASE_URL"),
		Registry: registry,
		Logger:   log,
	})

	plannerService := planner.NewService(planner.ServiceConfig{
		Provider: directionsClient,
		Logger:   log,
	})
	log.Info().Str("provider", directionsClient.Name()).Msg("planner service initialized")

	// Initialize the geocoding provider
	geocoder := geomaps.NewClient(geomaps.ClientConfig{
		APIKey:   apiKey,
		BaseURL:  os.Getenv("GOOGLE_MAPS_BASE_URL"),
		Registry: registry,
		Logger:   log,
	})
	log.Info().Str("provider", geocoder.Name()).Msg("geocoder initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Logger:         log,
		ServiceName:    serviceName,
		Metrics:        metrics,
		DB:             pool,
		Registry:       registry,
		TripService:    tripService,
		PlannerService: plannerService,
		Geocoder:       geocoder,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
