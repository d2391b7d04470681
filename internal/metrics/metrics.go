package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "localhunt",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "localhunt",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	// Map session metrics
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "localhunt",
		Subsystem: "map",
		Name:      "active_sessions",
		Help:      "Current number of live map/directions sessions",
	})

	SessionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "localhunt",
		Subsystem: "map",
		Name:      "sessions_expired_total",
		Help:      "Total sessions closed by the idle janitor",
	})

	GeolocationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "localhunt",
		Subsystem: "geolocation",
		Name:      "failures_total",
		Help:      "Total geolocation failures by kind",
	}, []string{"kind"})

	RoutesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "localhunt",
		Subsystem: "routing",
		Name:      "routes_computed_total",
		Help:      "Total routes computed by the routing engine",
	})

	RouteErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "localhunt",
		Subsystem: "routing",
		Name:      "route_errors_total",
		Help:      "Total routing engine failures",
	})
)

// Handler exposes the prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware records request counts and latency per route.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
