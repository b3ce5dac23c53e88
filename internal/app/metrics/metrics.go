package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voice_enhancer"

// HTTP metrics (incremented by middleware).
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed.",
	}, []string{"method", "route", "status_code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Pipeline metrics (incremented by the converter and services).
var (
	PipelineStagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_stages_total",
		Help:      "Process-audio pipeline stage outcomes.",
	}, []string{"stage", "result"})

	ProviderCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_call_duration_seconds",
		Help:      "Latency of external provider calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"stage"})

	RecordsAppendedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_appended_total",
		Help:      "Transcription records appended to history.",
	}, []string{"backend"})
)

// Stage outcome labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		PipelineStagesTotal,
		ProviderCallDuration,
		RecordsAppendedTotal,
	)
}
