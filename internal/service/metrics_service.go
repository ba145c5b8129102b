package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation. All methods are safe on a nil receiver.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	dbQueryDuration  *prometheus.HistogramVec
	fetchDuration    *prometheus.HistogramVec
	fetchTotal       *prometheus.CounterVec
	staleResults     *prometheus.CounterVec
	rejectedRecords  *prometheus.CounterVec
	snapshotFailures prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})

	fetchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_fetch_duration_seconds",
		Help:    "Duration of store fetch operations including normalization",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind", "operation"})

	fetchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_total",
		Help: "Store fetch operations by outcome",
	}, []string{"kind", "operation", "outcome"})

	staleResults := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_stale_results_total",
		Help: "Fetch results discarded because a newer fetch was issued",
	}, []string{"kind", "operation"})

	rejectedRecords := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_rejected_records_total",
		Help: "Catalog rows dropped from list results for missing required fields",
	}, []string{"kind"})

	snapshotFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_snapshot_publish_failures_total",
		Help: "Store snapshots that could not be published",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, dbQueryDuration, fetchDuration, fetchTotal, staleResults, rejectedRecords, snapshotFailures, goroutines)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		dbQueryDuration:  dbQueryDuration,
		fetchDuration:    fetchDuration,
		fetchTotal:       fetchTotal,
		staleResults:     staleResults,
		rejectedRecords:  rejectedRecords,
		snapshotFailures: snapshotFailures,
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveDBQuery records database query timing.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// ObserveFetch records the outcome of a store operation that was applied to state.
func (m *MetricsService) ObserveFetch(kind, operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(kind, operation).Observe(duration.Seconds())
	m.fetchTotal.WithLabelValues(kind, operation, outcome).Inc()
}

// RecordStaleResult counts a fetch result dropped by the generation check.
func (m *MetricsService) RecordStaleResult(kind, operation string) {
	if m == nil {
		return
	}
	m.staleResults.WithLabelValues(kind, operation).Inc()
}

// RecordRejectedRecord counts a list row dropped for missing required fields.
func (m *MetricsService) RecordRejectedRecord(kind string) {
	if m == nil {
		return
	}
	m.rejectedRecords.WithLabelValues(kind).Inc()
}

// RecordSnapshotPublishFailure counts a snapshot that could not be delivered.
func (m *MetricsService) RecordSnapshotPublishFailure() {
	if m == nil {
		return
	}
	m.snapshotFailures.Inc()
}
