package geo

import (
	"errors"

	"github.com/twpayne/go-polyline"
)

// DecodePolyline decodes a Google encoded polyline string into a point
// sequence, validating every decoded coordinate.
func DecodePolyline(encoded string) ([]Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline string is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.New("failed to decode polyline: " + err.Error())
	}

	points := make([]Point, len(coords))
	for i, coord := range coords {
		points[i] = Point{Latitude: coord[0], Longitude: coord[1]}
		if !points[i].Valid() {
			return nil, errors.New("decoded polyline contains invalid coordinates")
		}
	}

	return points, nil
}

// EncodePolyline encodes a point sequence as a Google encoded polyline
// string.
func EncodePolyline(points []Point) (string, error) {
	if len(points) == 0 {
		return "", errors.New("no points to encode")
	}

	coords := make([][]float64, len(points))
	for i, p := range points {
		if !p.Valid() {
			return "", ErrInvalidCoordinate
		}
		coords[i] = []float64{p.Latitude, p.Longitude}
	}

	return string(polyline.EncodeCoords(coords)), nil
}
