package obstacle

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/openuas/airspace/internal/lib/geo"
	"github.com/openuas/airspace/internal/lib/telemetry"
	"github.com/openuas/airspace/internal/lib/units"
	"github.com/openuas/airspace/internal/logging"
	"github.com/openuas/airspace/internal/observability"
)

// Config bounds how far apart two consecutive samples may be before linear
// interpolation between them is no longer trusted.
type Config struct {
	// MaxInterpolateInterval is the longest gap between consecutive
	// samples for which the straight-line path is trusted.
	MaxInterpolateInterval time.Duration

	// MaxAirspeedFtPerSec is the vehicle's speed envelope in feet per
	// second. Segments implying a higher average speed fall back to the
	// detour feasibility test.
	MaxAirspeedFtPerSec float64
}

// Evaluator decides whether tracks collide with cylindrical obstacles. It
// holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	cfg     Config
	log     logging.Logger
	metrics *observability.Collector
}

// Option customizes an Evaluator.
type Option func(*Evaluator)

// WithLogger attaches a structured logger for branch-decision debugging.
func WithLogger(l logging.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// WithCollector attaches Prometheus metrics. A nil collector leaves the
// evaluator unmetered.
func WithCollector(c *observability.Collector) Option {
	return func(e *Evaluator) { e.metrics = c }
}

// NewEvaluator creates an Evaluator, rejecting non-positive bounds.
func NewEvaluator(cfg Config, opts ...Option) (*Evaluator, error) {
	if cfg.MaxInterpolateInterval <= 0 {
		return nil, fmt.Errorf("%w: max interpolate interval must be positive", ErrInvalidInput)
	}
	if cfg.MaxAirspeedFtPerSec <= 0 {
		return nil, fmt.Errorf("%w: max airspeed must be positive", ErrInvalidInput)
	}
	e := &Evaluator{cfg: cfg, log: logging.Noop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// TrackCollides reports whether the track ever passed inside the obstacle.
// The first sample is tested for containment; every consecutive pair is
// tested for an interpolated collision, short-circuiting on the first hit.
// Samples are evaluated exactly in the supplied order.
func (e *Evaluator) TrackCollides(ctx context.Context, obs Obstacle, track telemetry.Track) (bool, error) {
	if err := obs.Validate(); err != nil {
		e.countResult(observability.ResultError)
		return false, err
	}
	if err := track.Validate(); err != nil {
		e.countResult(observability.ResultError)
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// One projection per evaluation, centered on the obstacle, shared by
	// every segment test.
	proj := geo.NewUTMProjection(obs.Center)

	if obs.Contains(track[0]) {
		e.log.Debug(ctx, "first sample inside obstacle",
			logging.Float64("altitude_msl", track[0].AltitudeMSL))
		e.countResult(observability.ResultCollision)
		return true, nil
	}

	for i := 1; i < len(track); i++ {
		if e.SegmentCollides(ctx, obs, track[i-1], track[i], proj) {
			e.log.Debug(ctx, "segment collision detected", logging.Int("segment", i))
			e.countResult(observability.ResultCollision)
			return true, nil
		}
	}

	e.countResult(observability.ResultClear)
	return false, nil
}

// SegmentCollides reports whether the path implied between two consecutive
// samples intersects the obstacle. When the samples are close enough in
// time and implied speed, the straight line between them is tested against
// the cylinder analytically; otherwise the optimistic detour fallback
// applies.
func (e *Evaluator) SegmentCollides(ctx context.Context, obs Obstacle, start, end telemetry.Sample, proj geo.Projection) bool {
	t := end.Timestamp.Sub(start.Timestamp).Seconds()
	d, err := geo.DistanceFeet(start.Position, start.AltitudeMSL, end.Position, end.AltitudeMSL)
	if err != nil {
		return false
	}

	if t <= 0 || t > e.cfg.MaxInterpolateInterval.Seconds() || d/t > e.cfg.MaxAirspeedFtPerSec {
		e.countSegment(observability.BranchFallback)
		return e.fallbackCollides(ctx, obs, start, end, t)
	}

	e.countSegment(observability.BranchInterpolated)
	return e.interpolatedCollides(ctx, obs, start, end, proj)
}

// fallbackCollides is the sparse-telemetry branch: a collision exists iff
// the vehicle could fly from start to a point over the obstacle center to
// end without exceeding the airspeed bound. The crossing altitude is the
// mean of the two sample altitudes, clamped to the cylinder height. A
// feasible obstacle-routed path is treated as evidence for collision; an
// infeasible one clears the segment.
func (e *Evaluator) fallbackCollides(ctx context.Context, obs Obstacle, start, end telemetry.Sample, t float64) bool {
	if t <= 0 {
		// Zero elapsed time implies unbounded speed; no detour is
		// achievable.
		return false
	}

	crossingAlt := math.Min((start.AltitudeMSL+end.AltitudeMSL)/2, obs.CylinderHeight)
	leg1, err := geo.DistanceFeet(start.Position, start.AltitudeMSL, obs.Center, crossingAlt)
	if err != nil {
		return false
	}
	leg2, err := geo.DistanceFeet(obs.Center, crossingAlt, end.Position, end.AltitudeMSL)
	if err != nil {
		return false
	}

	avgSpeed := (leg1 + leg2) / t
	e.log.Debug(ctx, "fallback detour test",
		logging.Float64("crossing_alt_ft", crossingAlt),
		logging.Float64("avg_speed_ft_per_sec", avgSpeed))
	return avgSpeed <= e.cfg.MaxAirspeedFtPerSec
}

// interpolatedCollides projects start, end, and the obstacle center into
// the shared planar frame and solves the line–circle intersection
// analytically, then maps each intersection back to an altitude on the 3D
// line. A root collides when its altitude falls strictly inside
// (0, CylinderHeight). Projection failure for any point clears the segment.
func (e *Evaluator) interpolatedCollides(ctx context.Context, obs Obstacle, start, end telemetry.Sample, proj geo.Projection) bool {
	x1, y1, err := proj.Project(start.Position)
	if err != nil {
		return e.projectionFailed(ctx, err)
	}
	x2, y2, err := proj.Project(end.Position)
	if err != nil {
		return e.projectionFailed(ctx, err)
	}
	cx, cy, err := proj.Project(obs.Center)
	if err != nil {
		return e.projectionFailed(ctx, err)
	}

	z1 := units.FeetToMeters(start.AltitudeMSL)
	z2 := units.FeetToMeters(end.AltitudeMSL)
	radius := units.FeetToMeters(obs.CylinderRadius)
	height := units.FeetToMeters(obs.CylinderHeight)

	if x1 == x2 && y1 == y2 {
		// No horizontal motion: the path is a vertical line. It collides
		// when the shared horizontal point is inside the circle and the
		// altitude range crosses the cylinder's vertical extent.
		dx := x1 - cx
		dy := y1 - cy
		if dx*dx+dy*dy > radius*radius {
			return false
		}
		lo := math.Min(z1, z2)
		hi := math.Max(z1, z2)
		return hi > 0 && lo < height
	}

	if x1 == x2 {
		// Vertical in projected x: substitute x = x1 into the circle
		// equation and solve for y instead of dividing by zero.
		dx := x1 - cx
		disc := radius*radius - dx*dx
		if disc < 0 {
			return false
		}
		s := math.Sqrt(disc)
		for _, y := range [2]float64{cy - s, cy + s} {
			z := z1 + (y-y1)*(z2-z1)/(y2-y1)
			if z > 0 && z < height {
				return true
			}
		}
		return false
	}

	// Line through the projected samples: y = m x + b. Substituting into
	// the circle (x-cx)^2 + (y-cy)^2 = r^2 gives a quadratic in x.
	m := (y2 - y1) / (x2 - x1)
	b := y1 - m*x1
	k := b - cy

	qa := m*m + 1
	qb := 2 * (m*k - cx)
	qc := cx*cx + k*k - radius*radius

	roots, ok := solveQuadratic(qa, qb, qc)
	if !ok {
		return false
	}

	for _, x := range roots {
		z := z1 + (x-x1)*(z2-z1)/(x2-x1)
		if z > 0 && z < height {
			return true
		}
	}
	return false
}

func (e *Evaluator) projectionFailed(ctx context.Context, err error) bool {
	// Geometric uncertainty at projection edges never counts as a
	// positive detection.
	e.log.Debug(ctx, "projection failure, clearing segment", logging.Err(err))
	if e.metrics != nil {
		e.metrics.ProjectionFailures.Inc()
	}
	return false
}

func (e *Evaluator) countResult(result string) {
	if e.metrics != nil {
		e.metrics.Evaluations.WithLabelValues(result).Inc()
	}
}

func (e *Evaluator) countSegment(branch string) {
	if e.metrics != nil {
		e.metrics.Segments.WithLabelValues(branch).Inc()
	}
}
