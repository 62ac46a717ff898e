package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineRoundTrip(t *testing.T) {
	points := []Point{
		{Latitude: 38.0, Longitude: -76.0},
		{Latitude: 38.0025, Longitude: -75.995},
		{Latitude: 38.005, Longitude: -75.99},
	}

	encoded, err := EncodePolyline(points)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := DecodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(points))

	// Polyline encoding is precise to 1e-5 degrees.
	for i := range points {
		assert.InDelta(t, points[i].Latitude, decoded[i].Latitude, 1e-5)
		assert.InDelta(t, points[i].Longitude, decoded[i].Longitude, 1e-5)
	}
}

func TestDecodePolylineErrors(t *testing.T) {
	_, err := DecodePolyline("")
	assert.Error(t, err)

	_, err = DecodePolyline("invalid_polyline_data")
	assert.Error(t, err)
}

func TestEncodePolylineErrors(t *testing.T) {
	_, err := EncodePolyline(nil)
	assert.Error(t, err)

	_, err = EncodePolyline([]Point{{Latitude: 200, Longitude: 0}})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
