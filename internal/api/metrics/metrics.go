// Package metrics defines and registers all custom Prometheus metrics for the
// courses API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courses"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CoursesCreatedTotal counts successfully created courses.
var CoursesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of courses created.",
	},
)

// ListRequestsTotal counts course list queries.
// Label:
//   - filtered: "yes" when a search filter was supplied, "no" otherwise
var ListRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_requests_total",
		Help:      "Total number of course list queries, by whether a title filter was used.",
	},
	[]string{"filtered"},
)
