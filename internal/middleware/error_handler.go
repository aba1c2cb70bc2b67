package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Handlers that already wrote a response only get their errors logged;
// anything left unanswered becomes a translated 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		status := c.Writer.Status()
		event := log.Error()
		if c.Writer.Written() && status < http.StatusInternalServerError {
			event = log.Debug()
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("session_id", GetCartSessionID(c)).
			Err(err.Err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(GetRequestID(c))
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
