// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/guttosm/bakery-service/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	catalogBreakerName = "mongodb_catalog"
	cartsBreakerName   = "mongodb_carts"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	ProductRepo    repository.ProductRepositoryInterface
	CategoryRepo   repository.CategoryRepositoryInterface
	PromotionRepo  repository.PromotionRepositoryInterface
	CartRepo       repository.CartRepositoryInterface
	CatalogBreaker *circuitbreaker.CircuitBreaker
	CartsBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the breaker-guarded repositories.
// Returns nil if the database is disabled or the connection fails; the storefront
// then runs with in-memory carts and reports the catalog as unavailable.
func InitializeDatabase(cfg config.DatabaseConfig, cartSessionTTL time.Duration) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Snapshots outlive the in-memory session so a returning shopper finds their cart.
	if cartSessionTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.SetCartsTTL(ctx, snapshotTTL(cartSessionTTL)); err != nil {
			log.Warn().Err(err).Msg("Failed to set cart snapshot TTL index")
		}
	}

	catalogCB := newCircuitBreaker(cfg, catalogBreakerName)
	cartsCB := newCircuitBreaker(cfg, cartsBreakerName)

	return &DatabaseComponents{
		DB:             db,
		ProductRepo:    repository.NewProductRepositoryWithCircuitBreaker(repository.NewProductRepository(db), catalogCB),
		CategoryRepo:   repository.NewCategoryRepositoryWithCircuitBreaker(repository.NewCategoryRepository(db), catalogCB),
		PromotionRepo:  repository.NewPromotionRepositoryWithCircuitBreaker(repository.NewPromotionRepository(db), catalogCB),
		CartRepo:       repository.NewCartRepositoryWithCircuitBreaker(repository.NewCartRepository(db), cartsCB),
		CatalogBreaker: catalogCB,
		CartsBreaker:   cartsCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		IsFailure:        repository.IsStoreFailure,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// snapshotTTL keeps stored carts for a week, or longer when sessions outlive that.
func snapshotTTL(sessionTTL time.Duration) time.Duration {
	const week = 7 * 24 * time.Hour
	if sessionTTL > week {
		return sessionTTL
	}
	return week
}
