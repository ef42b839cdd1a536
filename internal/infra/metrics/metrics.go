// Package metrics exposes Prometheus collectors for the tracker.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "macro_tracker",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macro_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "macro_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to ~0.5s
		},
		[]string{"method", "path"},
	)

	foodsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "macro_tracker",
			Subsystem: "catalog",
			Name:      "foods_added_total",
			Help:      "Total number of foods added to the catalog.",
		},
	)

	entriesLogged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "macro_tracker",
			Subsystem: "ledger",
			Name:      "entries_logged_total",
			Help:      "Total number of ledger entries created.",
		},
	)

	entriesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "macro_tracker",
			Subsystem: "ledger",
			Name:      "entries_deleted_total",
			Help:      "Total number of ledger entries removed.",
		},
	)

	blobWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macro_tracker",
			Subsystem: "persistence",
			Name:      "blob_writes_total",
			Help:      "Total number of blob writes by key and result.",
		},
		[]string{"key", "result"},
	)

	decodeFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "macro_tracker",
			Subsystem: "persistence",
			Name:      "decode_fallbacks_total",
			Help:      "Stored blobs that failed to decode and were replaced by defaults.",
		},
		[]string{"key"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		foodsAdded,
		entriesLogged,
		entriesDeleted,
		blobWrites,
		decodeFallbacks,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware returns a Gin middleware recording request counts and latency.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "/metrics" {
			c.Next()
			return
		}
		if path == "" {
			path = "unmatched"
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		method := c.Request.Method
		httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordFoodAdded counts a food added to the catalog.
func RecordFoodAdded() {
	foodsAdded.Inc()
}

// RecordEntryLogged counts a new ledger entry.
func RecordEntryLogged() {
	entriesLogged.Inc()
}

// RecordEntryDeleted counts a removed ledger entry.
func RecordEntryDeleted() {
	entriesDeleted.Inc()
}

// RecordBlobWrite counts a blob write for key, labelled by outcome.
func RecordBlobWrite(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	blobWrites.WithLabelValues(key, result).Inc()
}

// RecordDecodeFallback counts a blob replaced by its default after a decode failure.
func RecordDecodeFallback(key string) {
	decodeFallbacks.WithLabelValues(key).Inc()
}
