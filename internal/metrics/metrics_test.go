package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/products/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "labels by route template",
			path:           "/api/products/abc",
			label:          "/api/products/:id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records error status",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "collapses unknown paths",
			path:           "/nope/123",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordPriceResolution(t *testing.T) {
	before := testutil.ToFloat64(PriceResolutionsTotal.WithLabelValues("unavailable_flavor"))

	RecordPriceResolution("unavailable_flavor")

	assert.Equal(t, before+1, testutil.ToFloat64(PriceResolutionsTotal.WithLabelValues("unavailable_flavor")))
}

func TestRecordCartOperation(t *testing.T) {
	before := testutil.ToFloat64(CartOperationsTotal.WithLabelValues("add", "success"))

	RecordCartOperation("add", "success")
	RecordCartOperation("add", "success")

	assert.Equal(t, before+2, testutil.ToFloat64(CartOperationsTotal.WithLabelValues("add", "success")))
}

func TestSetActiveCartSessions(t *testing.T) {
	SetActiveCartSessions(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(CartSessionsActive))

	SetActiveCartSessions(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CartSessionsActive))
}

func TestObserveCartValue(t *testing.T) {
	before := testutil.CollectAndCount(CartValue)

	ObserveCartValue(decimal.RequireFromString("1299.50"))

	assert.Equal(t, before, testutil.CollectAndCount(CartValue))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("products", "get", "hit"))

	RecordCacheOperation("products", "get", "hit")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("products", "get", "hit")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("products", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("products")))

	SetCircuitBreakerState("products", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("products")))
}
