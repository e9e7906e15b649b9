// Package metrics defines all custom Prometheus metrics for the BizGenie API.
// It is the single source of truth for metric names, labels, and help strings.
// Registration happens at import time via promauto against the default
// registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bizgenie"

// GenerationRequestsTotal counts generation attempts by operation.
// Label:
//   - operation: "text", "image", "audio", or "video"
var GenerationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_requests_total",
		Help:      "Total number of generation requests, by operation.",
	},
	[]string{"operation"},
)

// GenerationErrorsTotal counts generation attempts that failed.
var GenerationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_errors_total",
		Help:      "Total number of failed generation requests, by operation.",
	},
	[]string{"operation"},
)

// GenerationDuration measures end-to-end provider latency per operation.
// Video durations include the full poll loop, so buckets stretch well past the
// default request range.
var GenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of generation requests from dispatch to artifact.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	},
	[]string{"operation"},
)

// LeadsCreatedTotal counts newly created leads.
// Label:
//   - source: acquisition channel as reported by the caller, "unknown" when absent
var LeadsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads created, by source.",
	},
	[]string{"source"},
)

// LeadAssignmentsTotal counts leads handed to agents.
var LeadAssignmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_assignments_total",
		Help:      "Total number of lead assignments.",
	},
)

// StreamSubscribersActive tracks currently connected SSE consumers.
// Label:
//   - stream: "session", "leads", or "content"
var StreamSubscribersActive = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stream_subscribers_active",
		Help:      "Current number of connected event-stream subscribers, by stream.",
	},
	[]string{"stream"},
)
