package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/middleware"
	"github.com/guttosm/bakery-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilderContext(t *testing.T, locale string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/cart/lines", nil)
	if locale != "" {
		c.Request.Header.Set(i18n.AcceptLanguageHeader, locale)
	}
	middleware.RequestID()(c)
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	snap := model.CartSnapshot{
		SessionID: "sess-1",
		Lines: []model.CartLine{{
			ID: "line-1",
			Configuration: model.LineConfiguration{
				Product:  &model.Product{ID: "cookie-1", Name: "Oat Cookie"},
				Weight:   "250g",
				Quantity: 2,
			},
			UnitPrice: decimal.RequireFromString("35.25"),
			Subtotal:  decimal.RequireFromString("70.50"),
		}},
		Total:   decimal.RequireFromString("70.50"),
		Version: 3,
	}

	tests := []struct {
		name           string
		send           func(*ResponseBuilder)
		expectedStatus int
	}{
		{"cart view", func(b *ResponseBuilder) { b.SuccessOK(dto.NewCartView(snap, "INR")) }, http.StatusOK},
		{"added line", func(b *ResponseBuilder) { b.SuccessCreated(dto.NewCartView(snap, "INR")) }, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(t, "")

			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp envelope[dto.CartView]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
			assert.Equal(t, "sess-1", resp.Data.SessionID)
			assert.Equal(t, "INR", resp.Data.Currency)
			assert.Equal(t, 2, resp.Data.ItemCount)
			assert.Equal(t, int64(3), resp.Data.Version)
			assert.True(t, decimal.RequireFromString("70.50").Equal(resp.Data.Total))
			require.Len(t, resp.Data.Lines, 1)
			assert.Equal(t, "Oat Cookie", resp.Data.Lines[0].ProductName)
		})
	}
}

func TestResponseBuilder_Fail(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		locale          string
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{"cart full", service.ErrCartFull, "", http.StatusConflict, dto.ErrCodeCartFull, "Your cart is full"},
		{"cart full in portuguese", service.ErrCartFull, "pt-BR", http.StatusConflict, dto.ErrCodeCartFull, "Seu carrinho está cheio"},
		{"wrapped product not found", fmt.Errorf("load cake-9: %w", service.ErrProductNotFound), "", http.StatusNotFound, dto.ErrCodeNotFound, "Product not found"},
		{"catalog store down", circuitbreaker.ErrCircuitOpen, "", http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "The catalog is temporarily unavailable, please try again shortly"},
		{"unknown error", errors.New("boom"), "", http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(t, tt.locale)

			NewResponseBuilder(c).Fail(tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
			assert.Empty(t, resp.Details)
			require.Len(t, c.Errors, 1, "the error is handed to the error handler for logging")
		})
	}
}

func TestResponseBuilder_BindFailed(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		c, w := newBuilderContext(t, "")
		var syntaxErr *json.SyntaxError
		err := json.Unmarshal([]byte(`{"quantity": two}`), &struct{}{})
		require.ErrorAs(t, err, &syntaxErr)

		NewResponseBuilder(c).BindFailed(err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
		assert.Equal(t, "Invalid request body", resp.Message)
		assert.Empty(t, resp.Details)
	})

	t.Run("missing product names the field", func(t *testing.T) {
		c, w := newBuilderContext(t, "")

		NewResponseBuilder(c).BindFailed(dto.ErrProductIDRequired)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
		assert.Equal(t, map[string]string{"product_id": "is required"}, resp.Details)
	})
}

func TestResponseBuilder_PooledEnvelopesDoNotLeak(t *testing.T) {
	first, _ := newBuilderContext(t, "")
	NewResponseBuilder(first).Fail(dto.ErrCategoryIDRequired)

	second, w := newBuilderContext(t, "")
	NewResponseBuilder(second).Fail(service.ErrCartFull)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeCartFull, resp.Error)
	assert.Empty(t, resp.Details)
	assert.Equal(t, middleware.GetRequestID(second), resp.RequestID)
	assert.NotEqual(t, middleware.GetRequestID(first), resp.RequestID)
}
