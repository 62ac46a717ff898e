package telemetry

import (
	"errors"
	"time"

	"github.com/openuas/airspace/internal/lib/geo"
)

// TrackFromPolyline builds a track from an encoded horizontal path plus
// per-point altitudes (feet MSL) and timestamps. All three inputs must
// describe the same number of points. Useful for flight logs exported as
// encoded polylines alongside altitude/time columns.
func TrackFromPolyline(encoded string, altitudes []float64, timestamps []time.Time) (Track, error) {
	points, err := geo.DecodePolyline(encoded)
	if err != nil {
		return nil, err
	}
	if len(points) != len(altitudes) || len(points) != len(timestamps) {
		return nil, errors.New("polyline, altitude, and timestamp counts differ")
	}

	track := make(Track, len(points))
	for i, p := range points {
		track[i] = Sample{
			Position:    p,
			AltitudeMSL: altitudes[i],
			Timestamp:   timestamps[i],
		}
	}
	if err := track.Validate(); err != nil {
		return nil, err
	}
	return track, nil
}

// EncodedPath returns the track's horizontal path as a Google encoded
// polyline string, dropping altitude and time.
func EncodedPath(t Track) (string, error) {
	points := make([]geo.Point, len(t))
	for i, s := range t {
		points[i] = s.Position
	}
	return geo.EncodePolyline(points)
}
