package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that guards the back-office routes with static API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If validKeys is nil or empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	keys := make([][]byte, 0, len(validKeys))
	for k, ok := range validKeys {
		if ok && k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		if !matchesAny(keys, []byte(key)) {
			log.Warn().
				Str("request_id", GetRequestID(c)).
				Str("path", c.Request.URL.Path).
				Str("ip", c.ClientIP()).
				Msg("Rejected back-office request with invalid API key")
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}

// matchesAny compares against every key so timing does not reveal which one matched.
func matchesAny(keys [][]byte, candidate []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, candidate)
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	locale := i18n.GetLocale(c)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(messageKey, locale)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
