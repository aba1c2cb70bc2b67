// Package main is the entry point for the bakery-service application.
//
// @title           Bakery Service API
// @version         1.0.0
// @description     Storefront and back-office API for a bakery.
//
//	Shoppers browse categories, configure products by flavor, weight and quantity,
//	and keep a session cart with per-line subtotals and a running total.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/bakery-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Back-office API key. Required on /api/admin routes when ADMIN_AUTH_ENABLED is true.
//
// @tag.name        Storefront
// @tag.description Storefront browsing
//
// @tag.name        Cart
// @tag.description Product configuration, quotes and the session cart
//
// @tag.name        Admin
// @tag.description Back-office catalog management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/bakery-service/docs" // swagger docs

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
