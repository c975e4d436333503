package auth

import (
	"log/slog"
	"net/http"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	"authgate/internal/infra/metrics"
)

// Decision is the outcome of gating a request.
type Decision int

const (
	// Allow lets the request through.
	Allow Decision = iota
	// Unauthorized means the request carried no credential the strategy understands.
	Unauthorized
	// Forbidden means the credential did not resolve to a user.
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Gate applies a Strategy to incoming requests.
type Gate struct {
	strategy Strategy
	logger   *slog.Logger
}

func NewGate(strategy Strategy, logger *slog.Logger) *Gate {
	return &Gate{strategy: strategy, logger: logger}
}

// Strategy returns the active strategy.
func (g *Gate) Strategy() Strategy {
	return g.strategy
}

// decisionError labels requests whose user could not be resolved because
// storage failed.
const decisionError = "error"

// Decide classifies r. On Allow the resolved user is returned, which is nil
// for exempt paths. A non-nil error means storage failed; the request is then
// denied as Forbidden and counted under the "error" decision.
func (g *Gate) Decide(r *http.Request) (Decision, *entity.User, error) {
	if !g.strategy.RequiresAuth(r.URL.Path) {
		return g.record(r, Allow), nil, nil
	}

	if !g.strategy.HasCredentials(r) {
		return g.record(r, Unauthorized), nil, nil
	}

	user, err := g.strategy.CurrentUser(r)
	if err != nil {
		g.recordFailure(r, err)

		return Forbidden, nil, err
	}
	if user == nil {
		return g.record(r, Forbidden), nil, nil
	}

	return g.record(r, Allow), user, nil
}

func (g *Gate) record(r *http.Request, d Decision) Decision {
	metrics.RecordDecision(g.strategy.Name(), d.String())

	if d != Allow {
		deliverycontext.GetLoggerOrDefault(r.Context(), g.logger).Debug("request denied",
			slog.String("strategy", g.strategy.Name()),
			slog.String("decision", d.String()),
			slog.String("path", r.URL.Path),
		)
	}

	return d
}

func (g *Gate) recordFailure(r *http.Request, err error) {
	metrics.RecordDecision(g.strategy.Name(), decisionError)

	deliverycontext.GetLoggerOrDefault(r.Context(), g.logger).Warn("request denied, user lookup failed",
		slog.String("strategy", g.strategy.Name()),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
}
