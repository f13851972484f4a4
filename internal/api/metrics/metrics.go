// Package metrics defines and registers all custom Prometheus metrics for the
// LifeLink API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Collectors register with the default Prometheus registry on package init via
// promauto; /metrics exposes them together with the echo HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lifelink"

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-in attempts.
// Labels:
//   - operation: "login", "register" or "demo"
//   - result: "ok", "not_found", "invalid_credentials", "duplicate", "no_role", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of sign-in attempts, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ActiveSessions tracks sessions currently held by the registry.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of live client sessions.",
	},
)

// NavigationClampedTotal counts navigation requests redirected to the role default.
// Label:
//   - role: the session's role
var NavigationClampedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_clamped_total",
		Help:      "Total number of navigation requests clamped to the role's default view.",
	},
	[]string{"role"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// PersistenceFailuresTotal counts swallowed slot write failures.
// Label:
//   - slot: the slot key that failed to persist
var PersistenceFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_failures_total",
		Help:      "Total number of storage writes that failed and were absorbed.",
	},
	[]string{"slot"},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// ChatRequestsTotal counts assistant requests.
// Label:
//   - result: "ok", "fallback" or "stale"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of chat requests, by result.",
	},
	[]string{"result"},
)

// ChatQueueDepth tracks the number of chat jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ChatQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_queue_depth",
		Help:      "Current number of chat jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ChatLatency measures collaborator round-trips.
var ChatLatency = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_latency_seconds",
		Help:      "Duration of chat collaborator calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
