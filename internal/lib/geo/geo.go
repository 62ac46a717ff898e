// Package geo provides the geodetic distance and projection utilities
// backing the obstacle collision evaluation: haversine great-circle
// distance, 3D geodetic distance, UTM zone selection and projection, and
// encoded-polyline conversion.
package geo

import (
	"errors"
	"math"

	"github.com/openuas/airspace/internal/lib/units"
)

// earthRadiusMeters is the mean Earth radius used for great-circle math.
const earthRadiusMeters = 6371000.0

// ErrInvalidCoordinate is returned when a latitude or longitude is outside
// the valid geodetic range.
var ErrInvalidCoordinate = errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")

// Valid reports whether the point's latitude and longitude are within
// geodetic range.
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// NewPoint creates a Point from latitude and longitude values with validation.
func NewPoint(latitude, longitude float64) (Point, error) {
	p := Point{Latitude: latitude, Longitude: longitude}
	if !p.Valid() {
		return Point{}, ErrInvalidCoordinate
	}
	return p, nil
}

// DistanceMeters calculates the great-circle distance between two points
// in meters using the haversine formula.
func DistanceMeters(p1, p2 Point) (float64, error) {
	if !p1.Valid() || !p2.Valid() {
		return 0, ErrInvalidCoordinate
	}

	if p1.Latitude == p2.Latitude && p1.Longitude == p2.Longitude {
		return 0, nil
	}

	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	dlat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	dlon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// DistanceFeet calculates the 3D distance in feet between two positions
// with altitudes above mean sea level in feet. The horizontal component is
// the great-circle distance; the vertical component is the altitude delta.
func DistanceFeet(p1 Point, alt1 float64, p2 Point, alt2 float64) (float64, error) {
	horizMeters, err := DistanceMeters(p1, p2)
	if err != nil {
		return 0, err
	}
	horiz := units.MetersToFeet(horizMeters)
	vert := alt2 - alt1
	return math.Hypot(horiz, vert), nil
}
