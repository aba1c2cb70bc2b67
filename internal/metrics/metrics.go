// Package metrics provides Prometheus metrics collection for the bakery service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PriceResolutionsTotal counts product configuration resolutions by outcome.
	PriceResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_resolutions_total",
			Help: "Total number of product configuration resolutions",
		},
		[]string{"result"},
	)

	// CartOperationsTotal counts cart mutations by operation and outcome.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// CartValue observes persisted cart totals.
	CartValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_value",
			Help:    "Cart total at each persisted mutation",
			Buckets: []float64{0, 100, 250, 500, 1000, 2000, 5000, 10000},
		},
	)

	// CartSessionsActive tracks carts held in memory.
	CartSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_sessions_active",
			Help: "Number of cart sessions held in memory",
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CircuitBreakerState reports breaker state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPriceResolution counts one resolution outcome.
func RecordPriceResolution(result string) {
	PriceResolutionsTotal.WithLabelValues(result).Inc()
}

// RecordCartOperation counts one cart operation.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveCartValue records a cart total.
func ObserveCartValue(total decimal.Decimal) {
	CartValue.Observe(total.InexactFloat64())
}

// SetActiveCartSessions sets the in-memory session gauge.
func SetActiveCartSessions(n int) {
	CartSessionsActive.Set(float64(n))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// SetCircuitBreakerState records a breaker's state as its numeric value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
