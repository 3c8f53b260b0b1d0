// Package metrics defines and registers all custom Prometheus metrics for the
// cabinet API. It is the single source of truth for metric names, labels, and
// help strings. Metrics self-register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cabinet"

// AuthFailuresTotal counts rejected init-data payloads.
// Label:
//   - reason: short internal cause ("missing_header", "invalid")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by init-data validation.",
	},
	[]string{"reason"},
)

// VisibilityUpdatesTotal counts attempts to replace the visibility settings.
// Label:
//   - result: "ok", "forbidden", or "error"
var VisibilityUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visibility_updates_total",
		Help:      "Total number of field-visibility write attempts, by result.",
	},
	[]string{"result"},
)

// ProjectionCacheTotal counts projection cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProjectionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projection_cache_total",
		Help:      "Total number of projection cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// BackendFetchDuration measures round-trips to the active data backend.
// Labels:
//   - backend: "sheets" or "mongo"
//   - kind: the dataset fetched ("clients", "archive", "templates")
var BackendFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_fetch_duration_seconds",
		Help:      "Duration of data backend reads.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"backend", "kind"},
)

// MessagesSentTotal counts admin-to-client messages handed to the bot API.
// Label:
//   - result: "ok" or "error"
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of outgoing client messages, by result.",
	},
	[]string{"result"},
)
