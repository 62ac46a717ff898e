// Package observability bundles Prometheus metrics for the collision
// evaluation pipeline and provides an HTTP handler to expose them.
package observability

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for the evaluations counter.
const (
	ResultCollision = "collision"
	ResultClear     = "clear"
	ResultError     = "error"
)

// Branch labels for the segments counter.
const (
	BranchInterpolated = "interpolated"
	BranchFallback     = "fallback"
)

// Collector bundles Prometheus metrics for obstacle evaluations.
type Collector struct {
	gatherer prometheus.Gatherer

	Evaluations        *prometheus.CounterVec
	Segments           *prometheus.CounterVec
	ProjectionFailures prometheus.Counter
}

// NewCollector registers evaluation metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Re-registration of identical metrics is tolerated so multiple evaluators
// can share one registry.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airspace_evaluations_total",
		Help: "Total number of track evaluations, labeled by verdict.",
	}, []string{"result"})
	evaluations, err := registerCounterVec(reg, evaluations)
	if err != nil {
		return nil, err
	}

	segments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airspace_segments_total",
		Help: "Total number of segment tests, labeled by branch taken.",
	}, []string{"branch"})
	segments, err = registerCounterVec(reg, segments)
	if err != nil {
		return nil, err
	}

	projectionFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "airspace_projection_failures_total",
		Help: "Total number of segment tests cleared because a position fell outside the projection domain.",
	})
	projectionFailures, err = registerCounter(reg, projectionFailures)
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		Evaluations:        evaluations,
		Segments:           segments,
		ProjectionFailures: projectionFailures,
	}, nil
}

// Handler returns an HTTP handler serving the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			return existing, nil
		}
		return nil, err
	}
	return cv, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(prometheus.Counter)
			if !ok {
				return nil, err
			}
			return existing, nil
		}
		return nil, err
	}
	return c, nil
}
