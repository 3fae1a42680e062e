// Package metrics defines the Prometheus metrics of the review API.
//
// All metrics are registered with the default registry on package load and
// exposed by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bizreview"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/businesses/{id}"), "unmatched" when no route matched
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ResourcesCreatedTotal counts created rows.
// Label:
//   - resource: "business", "photo", "review" or "user"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of created resources, by type.",
	},
	[]string{"resource"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
