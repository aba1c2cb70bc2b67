package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigins are the storefront dev servers allowed when none are configured.
var DefaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// CORS returns a middleware that handles Cross-Origin Resource Sharing for the storefront and back-office.
// The cart session header is both accepted and exposed so browsers can keep their session.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultCORSOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language",
			"accept", "Cache-Control", "X-Requested-With",
			APIKeyHeader, IdempotencyKeyHeader, RequestIDHeader, CartSessionHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader, CartSessionHeader, IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
