// Package metrics defines and registers all custom Prometheus metrics for
// the call-center API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "callcenter"

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

// CallsCreatedTotal counts call entries recorded through the call-entry flow.
// Label:
//   - type: "inbound" or "outbound"
var CallsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calls_created_total",
		Help:      "Total number of call entries created, by call type.",
	},
	[]string{"type"},
)

// StoreWritesTotal counts full-collection writes performed by the record
// store. Every mutating operation rewrites its whole collection, so this is
// also a proxy for mutation volume per collection.
// Label:
//   - collection: "users", "clients", "categories", or "calls"
var StoreWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_writes_total",
		Help:      "Total number of full-collection persists, by collection.",
	},
	[]string{"collection"},
)

// CSVExportsTotal counts report CSV exports served to clients.
var CSVExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_exports_total",
		Help:      "Total number of call-report CSV exports generated.",
	},
)
