package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ProviderRequests counts outbound provider calls by provider, resource
	// and outcome (success, error, rate_limited).
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_monitor_provider_requests_total",
			Help: "Outbound data provider requests by provider, resource and outcome.",
		},
		[]string{"provider", "resource", "outcome"},
	)

	// FallbackAttempts counts fallback provider consultations by resource and
	// outcome.
	FallbackAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_monitor_fallback_attempts_total",
			Help: "Fallback provider attempts by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)

	// MonitorSessions counts monitor passes. It increments once per pass
	// regardless of per-fetch outcomes.
	MonitorSessions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_monitor_sessions_total",
			Help: "Completed wallet monitor passes.",
		},
	)

	// TotalProfit mirrors the in-memory running profit total. It can go
	// negative; transaction amounts carry no sign convention.
	TotalProfit = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wallet_monitor_total_profit",
			Help: "Running total of observed transaction amounts.",
		},
	)

	// HTTPRequestDuration observes inbound request latency.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_monitor_http_request_duration_seconds",
			Help:    "HTTP request duration by method, path and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// MustRegisterMetrics registers all collectors with the default registry.
// Call once at startup; duplicate registration panics.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		ProviderRequests,
		FallbackAttempts,
		MonitorSessions,
		TotalProfit,
		HTTPRequestDuration,
	)
}

// GinMiddleware records request durations for every matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
