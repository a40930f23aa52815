// Package metrics defines the custom Prometheus metrics for the
// adminboard API. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (wrong password and unknown email
//     are deliberately not distinguished)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "failure" (duplicate email, store error)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRejectedTotal counts requests turned away by the session gate.
// Label:
//   - reason: "missing", "invalid", or "revoked"
var SessionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_rejected_total",
		Help:      "Total number of requests rejected by the session authorizer, by reason.",
	},
	[]string{"reason"},
)

// ── Showcase metrics ──────────────────────────────────────────────────────────

// ShowcaseOpsTotal counts showcase CRUD operations.
// Labels:
//   - op: "create", "update", or "delete"
//   - result: "success" or "failure"
var ShowcaseOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "showcase_operations_total",
		Help:      "Total number of showcase CRUD operations, by operation and result.",
	},
	[]string{"op", "result"},
)
