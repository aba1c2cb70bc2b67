package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/guttosm/bakery-service/internal/middleware"
	"github.com/guttosm/bakery-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	Currency          string
	Catalog           service.CatalogService
	Carts             *service.CartStore
	// Idempotency is built from defaults when nil and EnableIdempotency is set.
	Idempotency *middleware.IdempotencyConfig
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    10 * time.Second,
		EnableAuth:        false,
		EnableIdempotency: true,
		Currency:          "INR",
	}
}

// NewRouter creates and configures the Gin router for the bakery service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Configure global middleware
	configureGlobalMiddleware(router, &cfg)

	// Register infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	// Configure API routes
	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	registerBusinessRoutes(api, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.CartSession(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		idempotencyCfg := cfg.Idempotency
		if idempotencyCfg == nil {
			defaults := middleware.DefaultIdempotencyConfig()
			idempotencyCfg = &defaults
		}
		api.Use(middleware.Idempotency(*idempotencyCfg))
	}
}

// registerBusinessRoutes registers the storefront and back-office routes.
func registerBusinessRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	var catalogHandler *CatalogHandler
	var cartHandler *CartHandler
	if cfg.Catalog != nil {
		catalogHandler = NewCatalogHandler(cfg.Catalog)
		if cfg.Carts != nil {
			cartHandler = NewCartHandler(cfg.Catalog, cfg.Carts, cfg.Currency)
		}
	}

	NewStorefrontRoutes(catalogHandler, cartHandler).RegisterPublicRoutes(api)

	if cfg.Catalog != nil {
		NewAdminRoutes(NewAdminHandler(cfg.Catalog)).RegisterProtectedRoutes(api, cfg)
	}
}
