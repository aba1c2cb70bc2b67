// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger.
// An empty level falls back to info.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
