package obstacle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openuas/airspace/internal/lib/geo"
)

// plannedProjection maps specific points to fixed planar coordinates so
// the degenerate projected geometries can be exercised deterministically.
type plannedProjection struct {
	coords map[geo.Point][2]float64
}

func (p plannedProjection) Project(pt geo.Point) (float64, float64, error) {
	if xy, ok := p.coords[pt]; ok {
		return xy[0], xy[1], nil
	}
	return 0, 0, geo.ErrOutOfDomain
}

func (p plannedProjection) Zone() int   { return 18 }
func (p plannedProjection) North() bool { return true }

func TestVerticalProjectedSegment(t *testing.T) {
	// Start and end share a projected easting, so the line-circle solve
	// runs in y rather than dividing by zero. The obstacle circle
	// (radius 100 ft = 30.48 m) is offset 3 m east of the flight line.
	eval := newTestEvaluator(t, defaultTestConfig())

	start := pointOffset(websterField, 0, -50)
	end := pointOffset(websterField, 0, 50)
	proj := plannedProjection{coords: map[geo.Point][2]float64{
		start:               {0, -15},
		end:                 {0, 15},
		testObstacle.Center: {3, 0},
	}}

	ctx := context.Background()

	collides := eval.SegmentCollides(ctx, testObstacle,
		sampleAt(start, 100, testStart),
		sampleAt(end, 100, testStart.Add(5*time.Second)),
		proj)
	assert.True(t, collides, "north-south pass through the circle should collide")

	// Same geometry flown above the cylinder clears.
	collides = eval.SegmentCollides(ctx, testObstacle,
		sampleAt(start, 500, testStart),
		sampleAt(end, 500, testStart.Add(5*time.Second)),
		proj)
	assert.False(t, collides)

	// Offset the circle beyond the radius: no intersection in y.
	missProj := plannedProjection{coords: map[geo.Point][2]float64{
		start:               {0, -15},
		end:                 {0, 15},
		testObstacle.Center: {40, 0},
	}}
	collides = eval.SegmentCollides(ctx, testObstacle,
		sampleAt(start, 100, testStart),
		sampleAt(end, 100, testStart.Add(5*time.Second)),
		missProj)
	assert.False(t, collides)
}

func TestNoHorizontalMotionSegment(t *testing.T) {
	// Both samples project to the same planar point: a purely vertical
	// climb. Collision requires the point inside the circle and the
	// altitude range crossing the cylinder's extent.
	eval := newTestEvaluator(t, defaultTestConfig())
	ctx := context.Background()

	pos := pointOffset(websterField, 10, 10)

	inside := plannedProjection{coords: map[geo.Point][2]float64{
		pos:                 {5, 5},
		testObstacle.Center: {0, 0},
	}}
	outside := plannedProjection{coords: map[geo.Point][2]float64{
		pos:                 {100, 0},
		testObstacle.Center: {0, 0},
	}}

	collides := eval.SegmentCollides(ctx, testObstacle,
		sampleAt(pos, 50, testStart),
		sampleAt(pos, 150, testStart.Add(5*time.Second)),
		inside)
	assert.True(t, collides, "climb through the cylinder over its footprint should collide")

	collides = eval.SegmentCollides(ctx, testObstacle,
		sampleAt(pos, 50, testStart),
		sampleAt(pos, 150, testStart.Add(5*time.Second)),
		outside)
	assert.False(t, collides, "climb outside the footprint should clear")

	// Altitude range entirely below the floor clears even inside the
	// footprint.
	collides = eval.SegmentCollides(ctx, testObstacle,
		sampleAt(pos, -100, testStart),
		sampleAt(pos, -50, testStart.Add(5*time.Second)),
		inside)
	assert.False(t, collides)

	// Entirely above the ceiling clears too.
	collides = eval.SegmentCollides(ctx, testObstacle,
		sampleAt(pos, 500, testStart),
		sampleAt(pos, 600, testStart.Add(5*time.Second)),
		inside)
	assert.False(t, collides)
}

func TestSolveQuadratic(t *testing.T) {
	t.Run("two real roots", func(t *testing.T) {
		roots, ok := solveQuadratic(1, -3, 2)
		assert.True(t, ok)
		assert.ElementsMatch(t, []float64{1, 2}, roots[:])
	})

	t.Run("no real roots", func(t *testing.T) {
		_, ok := solveQuadratic(1, 0, 1)
		assert.False(t, ok)
	})

	t.Run("double root", func(t *testing.T) {
		roots, ok := solveQuadratic(1, -2, 1)
		assert.True(t, ok)
		assert.InDelta(t, 1, roots[0], 1e-12)
		assert.InDelta(t, 1, roots[1], 1e-12)
	})

	t.Run("large b cancellation", func(t *testing.T) {
		// x^2 - 1e8 x + 1 = 0 has a tiny root near 1e-8 that the naive
		// formula destroys.
		roots, ok := solveQuadratic(1, -1e8, 1)
		assert.True(t, ok)
		small := roots[0]
		if roots[1] < small {
			small = roots[1]
		}
		assert.InEpsilon(t, 1e-8, small, 1e-9)
	})
}
