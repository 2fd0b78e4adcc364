package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "journal_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec

	transitionsTotal    *prometheus.CounterVec
	reconciliationTotal *prometheus.CounterVec
	inFlightRejected    *prometheus.CounterVec

	postTotal *prometheus.CounterVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec
)

// Init registers the service metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_latency_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		backendRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "backend_requests_total",
				Help: "Total bookkeeping backend calls by endpoint and result",
			},
			[]string{"endpoint", "result"},
		)
		backendLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "backend_latency_seconds",
				Help:    "Bookkeeping backend call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "result"},
		)

		transitionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "lifecycle_transitions_total",
				Help: "Total suggestion lifecycle transitions by action and result",
			},
			[]string{"action", "result"},
		)
		reconciliationTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconciliations_total",
				Help: "Total list reloads after a transition settled, by list and result",
			},
			[]string{"list", "result"},
		)
		inFlightRejected = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "inflight_rejected_total",
				Help: "Total actions rejected because the same action was already running",
			},
			[]string{"action"},
		)

		postTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "entries_posted_total",
				Help: "Total post-entry attempts by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total exports by format, mode and result",
			},
			[]string{"format", "mode", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Export generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "mode"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			backendRequests,
			backendLatency,
			transitionsTotal,
			reconciliationTotal,
			inFlightRejected,
			postTotal,
			exportTotal,
			exportLatency,
		)
	})
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// ObserveBackendCall records one call to the bookkeeping backend.
func ObserveBackendCall(endpoint, result string, duration time.Duration) {
	if endpoint == "" {
		endpoint = "unknown"
	}
	if backendRequests != nil {
		backendRequests.WithLabelValues(endpoint, result).Inc()
	}
	if backendLatency != nil {
		backendLatency.WithLabelValues(endpoint, result).Observe(duration.Seconds())
	}
}

// IncTransition counts a settled lifecycle transition.
func IncTransition(action, result string) {
	if transitionsTotal != nil {
		transitionsTotal.WithLabelValues(action, result).Inc()
	}
}

// IncReconciliation counts a list reload after settlement.
func IncReconciliation(list, result string) {
	if reconciliationTotal != nil {
		reconciliationTotal.WithLabelValues(list, result).Inc()
	}
}

// IncInFlightRejected counts a duplicate action that was refused.
func IncInFlightRejected(action string) {
	if inFlightRejected != nil {
		inFlightRejected.WithLabelValues(action).Inc()
	}
}

// IncPost counts a post-entry attempt.
func IncPost(result string) {
	if postTotal != nil {
		postTotal.WithLabelValues(result).Inc()
	}
}

// ObserveExport records one generated export.
func ObserveExport(format, mode, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, mode, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, mode).Observe(duration.Seconds())
	}
}
