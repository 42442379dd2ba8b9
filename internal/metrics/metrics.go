// Package metrics defines the Prometheus collectors of the diet API. All
// collectors register with the default registry when the package loads.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "daily_diet"

// UsersCreatedTotal counts registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users registered.",
	},
)

// MealsCreatedTotal counts logged meals.
// Label:
//   - on_diet: "true" or "false"
var MealsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meals_created_total",
		Help:      "Total number of meals logged, by diet flag.",
	},
	[]string{"on_diet"},
)

// MealsUpdatedTotal counts replaced meals.
var MealsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meals_updated_total",
		Help:      "Total number of meals updated.",
	},
)

// MealsDeletedTotal counts deleted meals.
var MealsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meals_deleted_total",
		Help:      "Total number of meals deleted.",
	},
)

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/meals/{id}")
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
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
