package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	leadsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_parsed_total",
			Help: "Total number of leads run through the text extractor",
		},
		[]string{"source"},
	)

	leadParseFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_parse_fallbacks_total",
			Help: "Total number of extracted fields that fell back to their placeholder",
		},
		[]string{"field"},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded
const unmatchedRoute = "unmatched"

// Metrics records request counts and latencies per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		activeRequests.Inc()
		defer activeRequests.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordLeadParsed counts one extractor run for a lead source
func RecordLeadParsed(source string) {
	if source == "" {
		source = "unknown"
	}
	leadsParsed.WithLabelValues(source).Inc()
}

// RecordParseFallback counts one extracted field that fell back to its placeholder
func RecordParseFallback(field string) {
	leadParseFallbacks.WithLabelValues(field).Inc()
}
