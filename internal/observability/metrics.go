// Package observability registers the service's Prometheus collectors.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	recomputeRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "maintenance",
		Name:      "recompute_runs_total",
		Help:      "Denormalization recompute runs, by operation and result.",
	}, []string{"operation", "result"})
	nameFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "enrichment",
		Name:      "user_name_fallbacks_total",
		Help:      "Activity responses that fell back to the placeholder user name.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, recomputeRuns, nameFallbacks)
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordRecompute counts a maintenance run.
func RecordRecompute(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	recomputeRuns.WithLabelValues(operation, result).Inc()
}

func RecordNameFallback() {
	nameFallbacks.Inc()
}
