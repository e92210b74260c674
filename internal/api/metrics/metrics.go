// Package metrics defines and registers all custom Prometheus metrics for the
// pharmacy API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pharmacy"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (invalid credentials, missing secret)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "conflict" (duplicate email) or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - status: the initial order status (usually "pending")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by initial status.",
	},
	[]string{"status"},
)

// DashboardCacheTotal counts dashboard stats lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (recomputed)
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard stats lookups, by cache result.",
	},
	[]string{"result"},
)
