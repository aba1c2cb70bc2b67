package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is used when no translation is available.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout returns a middleware that bounds request processing with a context deadline.
// Handlers run on the request goroutine and pass the context to the data store,
// which gives up once the deadline passes. A handler that returns without writing
// after the deadline gets a 504.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		requestID := GetRequestID(c)
		log.Warn().
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Dur("timeout", cfg.Timeout).
			Msg("Request timed out")

		message := cfg.ErrorMessage
		if translator := i18n.GetTranslator(); translator != nil {
			message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		}
		errorResp := dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(requestID)
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}

// TimeoutWithDuration is a convenience function to create timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
