// Package metrics provides Prometheus metrics for the Solana Tracker MCP server.
// It tracks tool call counts, latencies, upstream API performance, and panics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "solana_tracker_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// UpstreamLatency measures Solana Tracker API call latency by endpoint.
	// The endpoint label is the unsubstituted path template, so cardinality
	// stays bounded by the tool catalog rather than by token addresses.
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_latency_seconds",
		Help:      "Solana Tracker API call latency by endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// UpstreamRequestsTotal counts Solana Tracker API requests
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_requests_total",
		Help:      "Total Solana Tracker API requests by endpoint and HTTP status",
	}, []string{"endpoint", "status"})

	// UpstreamErrors counts failed Solana Tracker API calls
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_errors_total",
		Help:      "Solana Tracker API errors by endpoint and HTTP status",
	}, []string{"endpoint", "status"})

	// ResponseSize tracks upstream response body sizes
	ResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "response_size_bytes",
		Help:      "Upstream response size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"endpoint"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordUpstreamCall records a Solana Tracker API call. A status of 0
// means the request never produced an HTTP response (transport failure).
func RecordUpstreamCall(endpoint string, duration float64, status int) {
	code := strconv.Itoa(status)
	UpstreamRequestsTotal.WithLabelValues(endpoint, code).Inc()
	UpstreamLatency.WithLabelValues(endpoint).Observe(duration)
	if status != 200 {
		UpstreamErrors.WithLabelValues(endpoint, code).Inc()
	}
}

// RecordResponseSize records the size of an upstream response body
func RecordResponseSize(endpoint string, bytes int) {
	ResponseSize.WithLabelValues(endpoint).Observe(float64(bytes))
}
