// Package metrics defines all custom Prometheus metrics for the incident
// reporting API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "incident"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

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

// AuthResolutionsTotal counts identity resolutions performed by the auth
// gateway on requests that presented a bearer token.
// Label:
//   - outcome: "authenticated" (identity attached) or "anonymous" (fallback)
var AuthResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_resolutions_total",
		Help:      "Total number of bearer-token identity resolutions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Incident metrics ──────────────────────────────────────────────────────────

// IncidentsReportedTotal counts newly created incidents.
var IncidentsReportedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incidents_reported_total",
		Help:      "Total number of incidents created.",
	},
)

// StatusUpdatesTotal counts incident status overwrites.
// Label:
//   - status: the new status applied (e.g. "Resolved")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of incident status updates, by new status.",
	},
	[]string{"status"},
)
