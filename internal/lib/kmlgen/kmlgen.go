// Package kmlgen renders obstacles and flight tracks as KML for
// visualization in Google Earth style viewers. Obstacles become extruded
// polygons approximating the cylinder cross-section; tracks become
// absolute-altitude line strings.
package kmlgen

import (
	"io"
	"math"

	kml "github.com/twpayne/go-kml/v2"

	"github.com/openuas/airspace/internal/lib/obstacle"
	"github.com/openuas/airspace/internal/lib/telemetry"
	"github.com/openuas/airspace/internal/lib/units"
)

// circleSegments is the number of points approximating the cylinder's
// circular cross-section.
const circleSegments = 36

const metersPerDegreeLat = 111320.0

// Document composes the obstacle and track placemarks into a single KML
// document.
func Document(obs obstacle.Obstacle, track telemetry.Track) *kml.CompoundElement {
	return kml.KML(
		kml.Document(
			kml.Name("airspace evaluation"),
			ObstaclePlacemark(obs),
			TrackPlacemark(track),
		),
	)
}

// Write renders the composed document to w.
func Write(w io.Writer, obs obstacle.Obstacle, track telemetry.Track) error {
	return Document(obs, track).WriteIndent(w, "", "  ")
}

// ObstaclePlacemark renders the cylinder as a closed ring at the cylinder
// height, extruded to the ground.
func ObstaclePlacemark(obs obstacle.Obstacle) *kml.CompoundElement {
	radiusMeters := units.FeetToMeters(obs.CylinderRadius)
	heightMeters := units.FeetToMeters(obs.CylinderHeight)

	metersPerDegreeLon := metersPerDegreeLat * math.Cos(obs.Center.Latitude*math.Pi/180)

	coords := make([]kml.Coordinate, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		coords = append(coords, kml.Coordinate{
			Lon: obs.Center.Longitude + radiusMeters*math.Cos(theta)/metersPerDegreeLon,
			Lat: obs.Center.Latitude + radiusMeters*math.Sin(theta)/metersPerDegreeLat,
			Alt: heightMeters,
		})
	}

	return kml.Placemark(
		kml.Name("obstacle"),
		kml.Polygon(
			kml.Extrude(true),
			kml.AltitudeMode(kml.AltitudeModeAbsolute),
			kml.OuterBoundaryIs(
				kml.LinearRing(
					kml.Coordinates(coords...),
				),
			),
		),
	)
}

// TrackPlacemark renders the track as an absolute-altitude line string.
func TrackPlacemark(track telemetry.Track) *kml.CompoundElement {
	coords := make([]kml.Coordinate, 0, len(track))
	for _, s := range track {
		coords = append(coords, kml.Coordinate{
			Lon: s.Position.Longitude,
			Lat: s.Position.Latitude,
			Alt: units.FeetToMeters(s.AltitudeMSL),
		})
	}

	return kml.Placemark(
		kml.Name("track"),
		kml.LineString(
			kml.AltitudeMode(kml.AltitudeModeAbsolute),
			kml.Tessellate(false),
			kml.Coordinates(coords...),
		),
	)
}
