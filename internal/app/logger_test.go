//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/bakery-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.LogConfig
		expectedLevel zerolog.Level
	}{
		{"empty level defaults to info", config.LogConfig{}, zerolog.InfoLevel},
		{"debug", config.LogConfig{Level: "debug"}, zerolog.DebugLevel},
		{"pretty warn", config.LogConfig{Level: "warn", Pretty: true}, zerolog.WarnLevel},
		{"error", config.LogConfig{Level: "error"}, zerolog.ErrorLevel},
		{"unknown level", config.LogConfig{Level: "chatty"}, zerolog.InfoLevel},
	}

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
