package geo

import (
	"errors"
	"math"
)

// ErrOutOfDomain is returned by Projection.Project when a position is far
// enough outside the projection's valid region that the transform is
// numerically unreliable. Callers treat this as a recovered outcome, not a
// failure to surface.
var ErrOutOfDomain = errors.New("position outside projection domain")

// WGS84 ellipsoid parameters.
const (
	wgs84SemiMajorMeters = 6378137.0
	wgs84Flattening      = 1 / 298.257223563

	// utmScaleFactor is the scale on the central meridian.
	utmScaleFactor = 0.9996

	utmFalseEastingMeters  = 500000.0
	utmFalseNorthingMeters = 10000000.0

	// maxMeridianOffsetDegrees bounds how far from the central meridian a
	// position may lie before the series expansion degrades. UTM zones are
	// 6 degrees wide; a wide margin is kept because only grossly
	// out-of-zone positions should be rejected.
	maxMeridianOffsetDegrees = 30.0

	// maxProjectionLatitudeDegrees is the polar limit of the UTM system.
	maxProjectionLatitudeDegrees = 84.0
)

// utmProjection is a WGS84 transverse Mercator projection for a single UTM
// zone and hemisphere.
type utmProjection struct {
	zone  int
	north bool
}

// NewUTMProjection selects the UTM zone and hemisphere covering center and
// returns a projection with low distortion near it. The selection is
// deterministic in the center's longitude and latitude.
func NewUTMProjection(center Point) Projection {
	return &utmProjection{
		zone:  utmZone(center.Longitude),
		north: center.Latitude >= 0,
	}
}

// utmZone returns the UTM longitude zone (1..60) containing lon.
func utmZone(lon float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < 1 {
		zone = 1
	} else if zone > 60 {
		zone = 60
	}
	return zone
}

func (u *utmProjection) Zone() int   { return u.zone }
func (u *utmProjection) North() bool { return u.north }

// centralMeridian returns the zone's central meridian in degrees.
func (u *utmProjection) centralMeridian() float64 {
	return float64(u.zone)*6 - 183
}

// Project converts p to UTM easting and northing in meters using the
// standard transverse Mercator series expansion (sub-meter accuracy within
// the zone). Positions grossly outside the zone or beyond the polar limits
// return ErrOutOfDomain.
func (u *utmProjection) Project(p Point) (float64, float64, error) {
	if !p.Valid() {
		return 0, 0, ErrInvalidCoordinate
	}
	if math.Abs(p.Latitude) > maxProjectionLatitudeDegrees {
		return 0, 0, ErrOutOfDomain
	}

	dLon := wrapDegrees(p.Longitude - u.centralMeridian())
	if math.Abs(dLon) > maxMeridianOffsetDegrees {
		return 0, 0, ErrOutOfDomain
	}

	const degToRad = math.Pi / 180
	phi := p.Latitude * degToRad
	dLam := dLon * degToRad

	e2 := wgs84Flattening * (2 - wgs84Flattening)
	ep2 := e2 / (1 - e2)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	n := wgs84SemiMajorMeters / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := ep2 * cosPhi * cosPhi
	a := dLam * cosPhi

	m := meridianArc(phi, e2)

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	x := utmScaleFactor*n*(a+
		(1-t+c)*a3/6+
		(5-18*t+t*t+72*c-58*ep2)*a5/120) + utmFalseEastingMeters

	y := utmScaleFactor * (m + n*tanPhi*(a2/2+
		(5-t+9*c+4*c*c)*a4/24+
		(61-58*t+t*t+600*c-330*ep2)*a6/720))
	if !u.north {
		y += utmFalseNorthingMeters
	}

	return x, y, nil
}

// meridianArc returns the distance in meters along the meridian from the
// equator to latitude phi (radians).
func meridianArc(phi, e2 float64) float64 {
	e4 := e2 * e2
	e6 := e4 * e2
	return wgs84SemiMajorMeters * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

// wrapDegrees normalizes a longitude difference to [-180, 180).
func wrapDegrees(deg float64) float64 {
	for deg >= 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}
	return deg
}
