package obstacle

import "math"

// solveQuadratic returns the real roots of a x^2 + b x + c = 0. The
// larger-magnitude root is computed first and the second derived via c/q,
// which stays accurate when b dominates 4ac. The caller guarantees a != 0.
func solveQuadratic(a, b, c float64) ([2]float64, bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return [2]float64{}, false
	}

	sq := math.Sqrt(disc)
	var q float64
	if b >= 0 {
		q = -0.5 * (b + sq)
	} else {
		q = -0.5 * (b - sq)
	}

	if q == 0 {
		// b == 0 and disc == 0: double root at the origin.
		return [2]float64{0, 0}, true
	}
	return [2]float64{q / a, c / q}, true
}
