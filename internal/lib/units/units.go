// Package units provides the linear unit conversions used to keep obstacle
// geometry (feet) and projected coordinates (meters) consistent.
package units

const (
	metersPerFoot        = 0.3048
	feetPerKilometer     = 3280.8398950131233
	feetPerSecondPerKnot = 1.6878098571011957
)

// FeetToMeters converts a length in feet to meters.
func FeetToMeters(feet float64) float64 {
	return feet * metersPerFoot
}

// MetersToFeet converts a length in meters to feet.
func MetersToFeet(meters float64) float64 {
	return meters / metersPerFoot
}

// KilometersToFeet converts a length in kilometers to feet.
func KilometersToFeet(km float64) float64 {
	return km * feetPerKilometer
}

// KnotsToFeetPerSecond converts a speed in knots to feet per second.
func KnotsToFeetPerSecond(knots float64) float64 {
	return knots * feetPerSecondPerKnot
}
