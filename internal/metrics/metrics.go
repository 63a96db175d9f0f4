// Package metrics exposes Prometheus collectors for the store.
//
//   - gaming_store_recommendations_total{tier}
//   - gaming_store_recommendation_diagnostics_total{code}
//   - gaming_store_http_requests_total{method,status}
//   - gaming_store_http_request_duration_seconds{method}
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gaming_store_recommendations_total",
			Help: "Build recommendations generated, by resolved tier",
		},
		[]string{"tier"},
	)

	RecommendationDiagnostics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gaming_store_recommendation_diagnostics_total",
			Help: "Non-fatal diagnostics attached to recommendations",
		},
		[]string{"code"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gaming_store_http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gaming_store_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method"},
	)
)

// Middleware records request count and latency.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		HTTPRequestsTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}

// RegisterRoutes mounts the Prometheus exposition endpoint at /metrics.
func RegisterRoutes(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
