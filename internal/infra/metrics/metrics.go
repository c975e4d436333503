// Package metrics defines Prometheus metrics for the authentication gate.
//
// Metric naming follows Prometheus conventions:
//   - authgate_ prefix for all custom metrics
//   - _total suffix for counters
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric exported on /metrics.
var Registry = prometheus.NewRegistry()

var (
	// AuthDecisionsTotal counts gate outcomes by strategy and decision.
	AuthDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authgate_auth_decisions_total",
			Help: "Total authentication decisions by strategy and outcome.",
		},
		[]string{"strategy", "decision"},
	)

	// SessionsCreatedTotal counts sessions issued by store kind.
	SessionsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authgate_sessions_created_total",
			Help: "Total sessions created.",
		},
		[]string{"store"},
	)

	// SessionsExpiredTotal counts sessions purged on read after their time-to-live elapsed.
	SessionsExpiredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "authgate_sessions_expired_total",
			Help: "Total sessions found expired and purged on lookup.",
		},
	)

	// SessionsDestroyedTotal counts sessions ended by logout.
	SessionsDestroyedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "authgate_sessions_destroyed_total",
			Help: "Total sessions destroyed by logout.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		AuthDecisionsTotal,
		SessionsCreatedTotal,
		SessionsExpiredTotal,
		SessionsDestroyedTotal,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordDecision(strategy, decision string) {
	AuthDecisionsTotal.WithLabelValues(strategy, decision).Inc()
}

func RecordSessionCreated(store string) {
	SessionsCreatedTotal.WithLabelValues(store).Inc()
}

func RecordSessionExpired() {
	SessionsExpiredTotal.Inc()
}

func RecordSessionDestroyed() {
	SessionsDestroyedTotal.Inc()
}
