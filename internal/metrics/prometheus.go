package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// OrdersTotal tracks created and transitioned orders by status
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of orders by status",
		},
		[]string{"status"},
	)

	// NotificationFailures counts dropped order-created notifications
	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_notification_failures_total",
			Help: "Total number of order notifications that failed to publish",
		},
	)

	// CatalogBreakerState tracks the catalog circuit breaker (0=closed, 1=open, 2=half-open)
	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Catalog client circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
	)
)

// PrometheusMiddleware records request counts and latencies per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
	}
}
