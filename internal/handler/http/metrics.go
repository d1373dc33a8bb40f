package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"intake-backend/internal/handler/http/responsewriter"
)

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets cover fast CRUD responses through slow multipart uploads.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// Business metrics
	contactsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "contacts_total",
			Help: "Total number of contacts in the database",
		},
	)

	newsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_total",
			Help: "Total number of news items in the database",
		},
	)
)

// MetricsHandler returns the Prometheus scrape endpoint handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware records request count, duration and in-flight gauge
// for every request. Paths are normalized to their route shape so the
// metric cardinality stays bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := responsewriter.Wrap(w)
		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.StatusCode())
		path := normalizeMetricPath(r.URL.Path)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).
			Observe(time.Since(start).Seconds())
	})
}

// UpdateContactsTotal updates the total count of contacts in the database.
func UpdateContactsTotal(count int64) {
	contactsTotal.Set(float64(count))
}

// UpdateNewsTotal updates the total count of news items in the database.
func UpdateNewsTotal(count int64) {
	newsTotal.Set(float64(count))
}

// normalizeMetricPath collapses record IDs to a placeholder so each route
// produces a single label value.
func normalizeMetricPath(path string) string {
	for _, prefix := range []string{"/api/contacts/", "/api/news/"} {
		if strings.HasPrefix(path, prefix) && len(path) > len(prefix) {
			return prefix + "{id}"
		}
	}
	return path
}
