// Package middleware provides HTTP middleware components for the bakery service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// CartSessionHeader carries the opaque shopper session that owns a cart.
	CartSessionHeader = "X-Cart-Session"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// CartSessionKey is the context key for the cart session ID.
	CartSessionKey ContextKey = "cart_session"
)

// maxSessionIDLength bounds client supplied session identifiers.
const maxSessionIDLength = 64

// RequestID returns a middleware that ensures each request has a unique ID.
// If the client provides X-Request-ID header, it will be used.
// Otherwise, a new UUID v4 will be generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// CartSession copies the X-Cart-Session header into the gin context.
// Oversized values are ignored so that the handler issues a fresh session.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := c.GetHeader(CartSessionHeader); sessionID != "" && len(sessionID) <= maxSessionIDLength {
			c.Set(string(CartSessionKey), sessionID)
		}
		c.Next()
	}
}

// GetCartSessionID returns the session ID set by CartSession or by a handler via SetCartSessionID.
func GetCartSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(CartSessionKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}

// SetCartSessionID records the session used for this request and echoes it to the client.
func SetCartSessionID(c *gin.Context, sessionID string) {
	c.Set(string(CartSessionKey), sessionID)
	c.Header(CartSessionHeader, sessionID)
}
