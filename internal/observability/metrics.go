package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SyncRunsTotal counts pipeline runs by outcome.
	SyncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_runs_total",
			Help: "Total number of sync pipeline runs",
		},
		[]string{"status"},
	)

	// SyncRowsLastRun is the row count written by the most recent
	// successful sync.
	SyncRowsLastRun = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_rows_last_run",
			Help: "Rows written by the most recent successful sync",
		},
	)

	// SyncDuration observes end-to-end pipeline run time.
	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sync_duration_seconds",
			Help:    "Sync pipeline run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		SyncRunsTotal,
		SyncRowsLastRun,
		SyncDuration,
		httpRequestsTotal,
		httpRequestDuration,
	)
}

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		httpRequestDuration.WithLabelValues(handler, c.Request.Method).
			Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(handler, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

// Handler exposes the Prometheus scrape endpoint through gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
