// Package obstacle implements collision evaluation of vehicle tracks
// against stationary cylindrical no-fly volumes: point-in-cylinder
// containment, an interpolated segment collision test with a
// velocity-bound fallback, and a short-circuiting track evaluator.
package obstacle

import (
	"errors"
	"fmt"

	"github.com/openuas/airspace/internal/lib/geo"
	"github.com/openuas/airspace/internal/lib/telemetry"
	"github.com/openuas/airspace/internal/lib/units"
)

// ErrInvalidInput is returned when an obstacle or track violates the input
// contract (negative geometry, empty track, timestamp order).
var ErrInvalidInput = errors.New("invalid input")

// Obstacle is a stationary cylindrical no-fly volume. The cylinder stands
// on the ground: its floor is altitude 0 MSL and its ceiling is
// CylinderHeight. Radius and height are in feet.
type Obstacle struct {
	Center         geo.Point `json:"center"`
	CylinderRadius float64   `json:"cylinder_radius"`
	CylinderHeight float64   `json:"cylinder_height"`
}

// Validate checks the obstacle geometry: a valid center coordinate and
// non-negative radius and height.
func (o Obstacle) Validate() error {
	if !o.Center.Valid() {
		return fmt.Errorf("%w: obstacle center: %v", ErrInvalidInput, geo.ErrInvalidCoordinate)
	}
	if o.CylinderRadius < 0 {
		return fmt.Errorf("%w: cylinder radius %f is negative", ErrInvalidInput, o.CylinderRadius)
	}
	if o.CylinderHeight < 0 {
		return fmt.Errorf("%w: cylinder height %f is negative", ErrInvalidInput, o.CylinderHeight)
	}
	return nil
}

// Contains reports whether a single sample lies inside the cylinder: the
// altitude within [0, CylinderHeight] and the horizontal distance to the
// center within CylinderRadius.
func (o Obstacle) Contains(s telemetry.Sample) bool {
	if s.AltitudeMSL < 0 || s.AltitudeMSL > o.CylinderHeight {
		return false
	}
	distMeters, err := geo.DistanceMeters(o.Center, s.Position)
	if err != nil {
		return false
	}
	return units.MetersToFeet(distMeters) <= o.CylinderRadius
}
