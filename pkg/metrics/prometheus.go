package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	calculations  *prometheus.CounterVec
	compatibility *prometheus.CounterVec
	cacheEvents   *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		calculations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sajucore_calculations_total",
				Help: "Total number of chart analyses performed",
			},
			[]string{"analysis"},
		),
		compatibility: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sajucore_compatibility_total",
				Help: "Total number of compatibility scorings",
			},
			[]string{"mode"},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sajucore_cache_events_total",
				Help: "Reading cache hits and misses",
			},
			[]string{"result"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sajucore_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sajucore_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordCalculation records one completed analysis section.
func (r *Recorder) RecordCalculation(analysis string) {
	r.calculations.WithLabelValues(analysis).Inc()
}

// RecordCompatibility records one compatibility scoring by mode.
func (r *Recorder) RecordCompatibility(mode string) {
	r.compatibility.WithLabelValues(mode).Inc()
}

// RecordCache records a cache hit or miss.
func (r *Recorder) RecordCache(result string) {
	r.cacheEvents.WithLabelValues(result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
