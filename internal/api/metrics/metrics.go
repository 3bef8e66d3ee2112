// Package metrics defines and registers all custom Prometheus metrics for
// the LemonQwest household API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lemonqwest"

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - method: "pin" or "child"
//   - result: the auth outcome ("success", "invalid_pin", "user_not_found")
//     or "error" on a collaborator fault
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by method and outcome.",
	},
	[]string{"method", "result"},
)

// RoleSwitchesTotal counts role switch attempts.
// Labels:
//   - target: the requested role ("child", "caregiver")
//   - result: the auth outcome, or "error" on a collaborator fault
var RoleSwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_switches_total",
		Help:      "Total number of role switch attempts, by target role and outcome.",
	},
	[]string{"target", "result"},
)

// LogoutsTotal counts logout requests. Logout is idempotent, so this counts
// requests rather than sessions ended.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout requests.",
	},
)

// AuthDuration measures end-to-end duration of auth domain operations.
// Label:
//   - op: "pin", "child", "switch_role"
var AuthDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_duration_seconds",
		Help:      "Duration of authentication domain operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
