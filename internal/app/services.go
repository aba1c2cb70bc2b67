// Package app provides service initialization.
package app

import (
	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/repository"
	"github.com/guttosm/bakery-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog *service.CatalogServiceImpl
	Carts   *service.CartStore
}

// InitializeServices builds the catalog service and the cart session store.
// db may be nil; the catalog then answers 503 and carts live only in memory.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	var (
		products   repository.ProductRepositoryInterface
		categories repository.CategoryRepositoryInterface
		promotions repository.PromotionRepositoryInterface
		persister  service.CartPersister
	)
	if db != nil {
		products = db.ProductRepo
		categories = db.CategoryRepo
		promotions = db.PromotionRepo
		if db.CartRepo != nil {
			persister = db.CartRepo
		}
	}

	var opts []service.CatalogOption
	if cfg.Catalog.CacheSize > 0 {
		opts = append(opts, service.WithProductCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL))
	}

	return &ServiceComponents{
		Catalog: service.NewCatalogService(products, categories, promotions, opts...),
		Carts: service.NewCartStore(service.CartStoreConfig{
			MaxSessions: cfg.Cart.MaxSessions,
			SessionTTL:  cfg.Cart.SessionTTL,
			MaxLines:    cfg.Cart.MaxLines,
		}, persister),
	}
}

// Close stops the cache sweepers.
func (s *ServiceComponents) Close() {
	s.Catalog.Close()
	s.Carts.Stop()
}
