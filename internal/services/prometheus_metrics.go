package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analysisRequests   *prometheus.CounterVec
	generationTotal    *prometheus.CounterVec
	generationDuration prometheus.Histogram
	breakerState       prometheus.Gauge
	uploadRowsParsed   prometheus.Counter
	uploadRowsSkipped  prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analysisRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisory_requests_total",
				Help: "Total number of advisory operations processed",
			},
			[]string{"operation", "status"},
		),
		generationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "narrative_generation_total",
				Help: "Total number of narrative generation attempts",
			},
			[]string{"status"},
		),
		generationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "narrative_generation_duration_milliseconds",
				Help:    "Narrative generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 15),
			},
		),
		breakerState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "generator_circuit_breaker_state",
				Help: "Generator circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
		uploadRowsParsed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expense_upload_rows_parsed_total",
				Help: "Total number of expense rows parsed from uploads",
			},
		),
		uploadRowsSkipped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expense_upload_rows_skipped_total",
				Help: "Total number of malformed expense rows skipped during uploads",
			},
		),
	}
}

// RecordAnalysis records the outcome of an advisory operation
func (pm *PrometheusMetrics) RecordAnalysis(operation, status string) {
	pm.analysisRequests.WithLabelValues(operation, status).Inc()
}

// RecordGeneration records a narrative generation attempt and its duration
func (pm *PrometheusMetrics) RecordGeneration(status string, duration time.Duration) {
	pm.generationTotal.WithLabelValues(status).Inc()
	pm.generationDuration.Observe(float64(duration.Milliseconds()))
}

// SetGeneratorBreakerState records the generator circuit breaker state
func (pm *PrometheusMetrics) SetGeneratorBreakerState(state float64) {
	pm.breakerState.Set(state)
}

// RecordUploadRows records parsed and skipped row counts for one upload
func (pm *PrometheusMetrics) RecordUploadRows(parsed, skipped int) {
	pm.uploadRowsParsed.Add(float64(parsed))
	pm.uploadRowsSkipped.Add(float64(skipped))
}
