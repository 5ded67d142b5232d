// Package metrics defines all custom Prometheus metrics for the storefront
// client. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry via promauto and are
// served by the debug endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// RequestsTotal counts backend requests by path template and outcome.
// Labels:
//   - path: the request path as issued (e.g. "/products")
//   - outcome: "ok", "empty", or "failed"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests, by path and outcome.",
	},
	[]string{"path", "outcome"},
)

// RequestDuration measures wall time of a single backend request.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend requests from issue to settle.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"path"},
)

// InFlightRequests tracks the current number of outstanding session-fetcher
// calls. This is the reference-counted busy indicator.
var InFlightRequests = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inflight_requests",
		Help:      "Current number of outstanding authenticated requests.",
	},
)

// NotificationsTotal counts notifications surfaced to the user, by kind.
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications shown, by kind (success/error/info).",
	},
	[]string{"kind"},
)
