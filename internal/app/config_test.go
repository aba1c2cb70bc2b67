package app

import (
	"time"

	"github.com/guttosm/bakery-service/config"
)

func baseConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Cart: config.CartConfig{
			SessionTTL:  time.Hour,
			MaxSessions: 100,
			MaxLines:    10,
			Currency:    "INR",
		},
		Catalog: config.CatalogConfig{
			CacheSize: 100,
			CacheTTL:  time.Minute,
		},
	}
}
