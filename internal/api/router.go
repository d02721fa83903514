package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/project/incident-report/internal/api/handler"
	"github.com/project/incident-report/internal/api/middleware"
	"github.com/project/incident-report/internal/core/domain"
	"github.com/project/incident-report/internal/core/ports"
	"github.com/project/incident-report/internal/core/service"
)

// RouterConfig carries the externally constructed dependencies the router
// wires together. Repositories are interfaces so tests can substitute
// in-memory implementations.
type RouterConfig struct {
	Users     ports.UserRepository
	Incidents ports.IncidentRepository
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger

	// Mongo and Redis back the readiness probe only.
	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("incident"))

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(cfg.Users, tokens, cfg.Logger)
	incidentService := service.NewIncidentService(cfg.Incidents, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	incidentHandler := handler.NewIncidentHandler(incidentService)

	// The gateway runs on every request; it only resolves identity and never
	// rejects. Rejection happens in the per-route role checks.
	e.Use(middleware.Auth(tokens, cfg.Users))

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Incident routes ---
	e.POST("/api/incidents", incidentHandler.Report,
		middleware.RequireRole(domain.CapabilityUser, domain.CapabilityAdmin))
	e.GET("/api/incidents", incidentHandler.List,
		middleware.RequireRole(domain.CapabilityAdmin))
	e.GET("/api/incidents/:id", incidentHandler.Get)
	e.PATCH("/api/incidents/:id/status", incidentHandler.UpdateStatus,
		middleware.RequireRole(domain.CapabilityAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
