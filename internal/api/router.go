// Package api provides the HTTP API for the Travel Planner service.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/yvonnejhao/Travel-Planner/internal/api/handler"
	"github.com/yvonnejhao/Travel-Planner/internal/api/middleware"
	"github.com/yvonnejhao/Travel-Planner/internal/geocoding"
	"github.com/yvonnejhao/Travel-Planner/internal/planner"
	"github.com/yvonnejhao/Travel-Planner/internal/provider/resilience"
	"github.com/yvonnejhao/Travel-Planner/internal/trip"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	DB             handler.Pinger
	Registry       *resilience.Registry
	TripService    *trip.Service
	PlannerService *planner.Service
	Geocoder       geocoding.Geocoder
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "travel-planner-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type
	r.Use(middleware.RequireJSON)          // Reject non-JSON bodies

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB, cfg.Registry)
	tripHandler := handler.NewTripHandler(cfg.TripService)
	routeHandler := handler.NewRouteHandler(cfg.PlannerService)

	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Trip persistence
		r.Route("/trips", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", tripHandler.ListTrips)
			r.Post("/", tripHandler.CreateTrip)
			r.Get("/count", tripHandler.CountTrips)
			r.Delete("/{tripId}", tripHandler.DeleteTrip)
		})

		// Route computation - calls the directions provider, strict rate limiting
		r.With(expensiveRateLimit).Post("/routes:compute", routeHandler.ComputeRoute)

		// Geocoding - calls the geocoding provider, strict rate limiting
		if cfg.Geocoder != nil {
			geocodeHandler := handler.NewGeocodeHandler(cfg.Geocoder)
			r.With(expensiveRateLimit).Get("/geocode", geocodeHandler.Geocode)
		}
	})

	return r
}
