// Package metrics defines all custom Prometheus metrics for the SkillSwap
// API. It is the single source of truth for metric names, labels, and help
// strings.
//
// Call Register() once at startup (before the HTTP server starts) to attach
// the collectors to the registry served at /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "skillswap"

// ── Resource metrics ──────────────────────────────────────────────────────────

// ResourceWritesTotal counts successful writes through the Resource Layer.
// Labels:
//   - resource: "skill" or "message"
//   - operation: "create", "update" or "delete"
var ResourceWritesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource writes, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts issued tokens.
// Label:
//   - kind: "pair" (obtain) or "access" (refresh)
var TokensIssuedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of tokens issued, by kind.",
	},
	[]string{"kind"},
)

// ── Error metrics ─────────────────────────────────────────────────────────────

// APIErrorsTotal counts client-facing errors rendered by the error handler.
// Label:
//   - kind: "validation", "unauthenticated", "not_found", "conflict", "http" or "internal"
var APIErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of error responses, by error kind.",
	},
	[]string{"kind"},
)

var collectors = []prometheus.Collector{
	ResourceWritesTotal,
	TokensIssuedTotal,
	APIErrorsTotal,
}

// Register attaches every collector to reg. Registering the same collectors
// on a registry twice is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
