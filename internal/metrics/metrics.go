package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vat_calculations_total",
			Help: "Calculations produced, by calculation type",
		},
		[]string{"type"},
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vat_amount_validation_failures_total",
			Help: "Amount validation failures, by reason",
		},
		[]string{"reason"},
	)

	RejectedEditsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vat_amount_rejected_edits_total",
			Help: "Amount edits rejected by sanitization",
		},
	)

	CopyOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vat_copy_outcomes_total",
			Help: "Outcomes of copy-to-clipboard requests",
		},
		[]string{"outcome"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vat_active_sessions",
			Help: "Current number of calculator sessions held in memory",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		CalculationsTotal,
		ValidationFailuresTotal,
		RejectedEditsTotal,
		CopyOutcomesTotal,
		ActiveSessions,
	)
}

// ObserveHTTPRequest records metrics for an HTTP request.
// path should be the route pattern, not the raw URL, to bound label cardinality.
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, path, code).Observe(duration.Seconds())
}
