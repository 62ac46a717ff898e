package geo

// Point represents a geodetic coordinate on the WGS84 ellipsoid.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Projection converts geodetic coordinates into a planar Cartesian frame
// (meters) valid over a bounded region. Implementations report
// ErrOutOfDomain when a position lies far enough outside that region that
// the transform is numerically unreliable.
type Projection interface {
	// Project returns the easting and northing of p in meters.
	Project(p Point) (x, y float64, err error)

	// Zone returns the UTM longitude zone the projection is centered on.
	Zone() int

	// North reports whether the projection uses the northern hemisphere
	// false-northing convention.
	North() bool
}
