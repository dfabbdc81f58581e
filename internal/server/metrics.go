package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipebox_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipebox_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipebox_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)
)

// metricsMiddleware records request count, latency and in-flight requests.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		path := metricPath(r.URL.Path)
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.Status())).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

const unmatchedPath = "unmatched"

// routeTemplates lists every path the server answers. Segments starting
// with ':' match any single value.
var routeTemplates = [][]string{
	splitPath("/metrics"),
	splitPath("/api/health"),
	splitPath("/api/users"),
	splitPath("/api/auth"),
	splitPath("/api/auth/refresh"),
	splitPath("/api/auth/logout"),
	splitPath("/api/auth/:provider/consent"),
	splitPath("/api/auth/:provider/callback"),
	splitPath("/api/recipes"),
	splitPath("/api/recipes/:id"),
	splitPath("/api/recipe_books"),
	splitPath("/api/recipe_books/:id"),
	splitPath("/api/shopping_lists"),
	splitPath("/api/shopping_lists/:id"),
}

// metricPath maps a request path to its route template so the label set
// stays bounded. Paths no route answers share one label.
func metricPath(path string) string {
	segments := splitPath(path)
	for _, tmpl := range routeTemplates {
		if matchTemplate(tmpl, segments) {
			return "/" + strings.Join(tmpl, "/")
		}
	}
	return unmatchedPath
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func matchTemplate(tmpl, segments []string) bool {
	if len(tmpl) != len(segments) {
		return false
	}
	for i, t := range tmpl {
		if strings.HasPrefix(t, ":") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if t != segments[i] {
			return false
		}
	}
	return true
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
	rw.written = true
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Status() int {
	return rw.statusCode
}
