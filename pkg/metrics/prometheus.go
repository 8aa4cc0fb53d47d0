// Package metrics provides Prometheus metrics for the campuslens dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the campuslens service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Dataset Metrics - Loading and normalization quality
	datasetLoads      *prometheus.CounterVec
	datasetLoadErrors *prometheus.CounterVec
	rowsNormalized    *prometheus.CounterVec
	rowsRejected      *prometheus.CounterVec
	normalizeDuration *prometheus.HistogramVec

	// Summary Metrics - Bundle assembly health
	bundlesComputed *prometheus.CounterVec
	bundleErrors    *prometheus.CounterVec
	summaryErrors   *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRateLimited     prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "campuslens",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetLoads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_loads_total",
			Help:      "Total number of dataset loads by kind",
		},
		[]string{"dataset"},
	)

	m.datasetLoadErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_load_errors_total",
			Help:      "Total number of dataset load failures by kind",
		},
		[]string{"dataset"},
	)

	m.rowsNormalized = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_normalized_total",
			Help:      "Total number of rows accepted by the normalizer",
		},
		[]string{"dataset"},
	)

	m.rowsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_rejected_total",
			Help:      "Total number of rows rejected by the normalizer (data quality indicator)",
		},
		[]string{"dataset"},
	)

	m.normalizeDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "normalize_duration_milliseconds",
			Help:      "Normalization duration per dataset in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"dataset"},
	)

	m.bundlesComputed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "bundles_computed_total",
			Help:      "Total number of summary bundles computed by kind",
		},
		[]string{"dataset"},
	)

	m.bundleErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "bundle_errors_total",
			Help:      "Total number of whole-bundle failures (schema mismatch) by kind",
		},
		[]string{"dataset"},
	)

	m.summaryErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "summary_errors_total",
			Help:      "Total number of per-summary computation errors",
		},
		[]string{"dataset", "summary"},
	)

	m.computeDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "bundle_compute_duration_milliseconds",
			Help:      "Summary bundle computation duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"dataset"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_rate_limited_total",
		Help:      "Total number of HTTP requests rejected by the rate limiter",
	})
}

// GetRegistry returns the prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers operating on the global manager.

// RecordDatasetLoad records a successful dataset load.
func RecordDatasetLoad(dataset string) {
	if globalManager.enabled {
		globalManager.datasetLoads.WithLabelValues(dataset).Inc()
	}
}

// RecordDatasetLoadError records a failed dataset load.
func RecordDatasetLoadError(dataset string) {
	if globalManager.enabled {
		globalManager.datasetLoadErrors.WithLabelValues(dataset).Inc()
	}
}

// RecordNormalization records normalizer output counts for one dataset pass.
func RecordNormalization(dataset string, accepted, rejected int) {
	if globalManager.enabled {
		globalManager.rowsNormalized.WithLabelValues(dataset).Add(float64(accepted))
		globalManager.rowsRejected.WithLabelValues(dataset).Add(float64(rejected))
	}
}

// RecordNormalizeDuration records normalization duration in milliseconds.
func RecordNormalizeDuration(dataset string, ms float64) {
	if globalManager.enabled {
		globalManager.normalizeDuration.WithLabelValues(dataset).Observe(ms)
	}
}

// RecordBundleComputed records a completed bundle computation.
func RecordBundleComputed(dataset string) {
	if globalManager.enabled {
		globalManager.bundlesComputed.WithLabelValues(dataset).Inc()
	}
}

// RecordBundleError records a whole-bundle failure.
func RecordBundleError(dataset string) {
	if globalManager.enabled {
		globalManager.bundleErrors.WithLabelValues(dataset).Inc()
	}
}

// RecordSummaryError records a single failed summary entry.
func RecordSummaryError(dataset, summary string) {
	if globalManager.enabled {
		globalManager.summaryErrors.WithLabelValues(dataset, summary).Inc()
	}
}

// RecordComputeDuration records bundle computation duration in milliseconds.
func RecordComputeDuration(dataset string, ms float64) {
	if globalManager.enabled {
		globalManager.computeDuration.WithLabelValues(dataset).Observe(ms)
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited() {
	if globalManager.enabled {
		globalManager.httpRateLimited.Inc()
	}
}
