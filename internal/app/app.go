// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/http"
)

// App is the wired bakery service.
type App struct {
	Router *gin.Engine

	db       *DatabaseComponents
	services *ServiceComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize database components (nil when MongoDB is disabled or unreachable)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Cart.SessionTTL)

	// Initialize catalog and cart services
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Initialize router components (health checks and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		db:       dbComponents,
		services: serviceComponents,
		router:   routerComponents,
	}
}

// Close releases background workers and the database connection.
// Call it after the HTTP server has drained.
func (a *App) Close() {
	a.router.Idempotency.Stop()
	a.services.Close()
	a.db.Close()
}
