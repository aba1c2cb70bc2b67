// Package app provides router configuration.
package app

import (
	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/http"
	"github.com/guttosm/bakery-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	Idempotency   middleware.IdempotencyConfig
}

// InitializeRouter builds the health handler and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if db != nil {
		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", db.DB)
		}
		healthHandler.RegisterCircuitBreaker(catalogBreakerName, db.CatalogBreaker)
		healthHandler.RegisterCircuitBreaker(cartsBreakerName, db.CartsBreaker)
	}
	healthHandler.RegisterGauge("cart_sessions", services.Carts.Len)

	if cfg.Auth.Enabled && len(cfg.Auth.APIKeys) == 0 {
		log.Warn().Msg("Admin auth is enabled but ADMIN_API_KEYS is empty - back-office routes are open")
	}

	idempotency := middleware.DefaultIdempotencyConfig()

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		Currency:          cfg.Cart.Currency,
		Catalog:           services.Catalog,
		Carts:             services.Carts,
		Idempotency:       &idempotency,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
		Idempotency:   idempotency,
	}
}
