package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/middleware"
)

// Envelopes are pooled; gin serializes synchronously, so one is free again once JSON returns.
var (
	successPool = sync.Pool{New: func() any { return new(dto.SuccessResponse) }}
	errorPool   = sync.Pool{New: func() any { return new(dto.ErrorResponse) }}
)

// ResponseBuilder writes the storefront's JSON envelopes.
// Every body carries the request ID so a shopper's report can be matched to the logs.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := successPool.Get().(*dto.SuccessResponse)
	*resp = dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}

	b.c.JSON(statusCode, resp)

	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

// SuccessOK sends a 200 response.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 response, used when a cart line or catalog entry is created.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the code derived from statusCode and the message for messageKey
// in the caller's Accept-Language.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithCode(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, err)
}

// ErrorWithCode aborts with an explicit machine-readable code such as cart_full.
// err, when set, is attached to the context for the error handler to log, and a
// *dto.ValidationError also fills Details with the offending field.
func (b *ResponseBuilder) ErrorWithCode(statusCode int, code, messageKey string, err error) {
	resp := errorPool.Get().(*dto.ErrorResponse)
	*resp = dto.ErrorResponse{
		Error:     code,
		Message:   i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c)),
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}
	if ve, ok := asValidationError(err); ok {
		resp.Details = map[string]string{ve.Field: ve.Message}
	}

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)

	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

// Fail renders a service error through the error table in errors.go.
func (b *ResponseBuilder) Fail(err error) {
	e := classify(err)
	b.ErrorWithCode(e.status, e.code, e.messageKey, err)
}

// BindFailed answers a request whose body could not be decoded or validated.
func (b *ResponseBuilder) BindFailed(err error) {
	if _, ok := asValidationError(err); ok {
		b.Fail(err)
		return
	}
	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
