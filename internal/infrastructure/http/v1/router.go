// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"sieve/internal/domain/preview"
	"sieve/internal/domain/query"
	"sieve/internal/infrastructure/http/v1/handlers"
	"sieve/internal/infrastructure/http/v1/middleware"
	"sieve/internal/metadata"
	"sieve/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Registry stores the resource definitions
	Registry *metadata.Registry

	// Preview renders statements for registered resources
	Preview *preview.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Registry)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	v1 := router.Group("/api/v1")
	{
		registerResourceRoutes(v1, cfg)
		registerUserRoutes(v1, cfg)
	}

	return router
}

// registerResourceRoutes registers the schema-driven resource endpoints.
func registerResourceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Preview == nil {
		return
	}
	handler := handlers.NewResourceHandler(handlers.NewBaseHandler(), cfg.Preview)
	RegisterResourceRoutes(rg.Group("/resources"), handler)
}

// registerUserRoutes registers the users endpoints backed by the
// statically declared filter group.
func registerUserRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	qcfg := query.DefaultConfig()
	if cfg.Preview != nil {
		qcfg = cfg.Preview.QueryConfig()
	}
	handler := handlers.NewUsersHandler(handlers.NewBaseHandler(), qcfg)
	RegisterPreviewRoutes(rg.Group("/users"), handler)
}
