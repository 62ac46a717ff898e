package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openuas/airspace/internal/lib/geo"
)

func sampleAt(lat, lng, alt float64, ts time.Time) Sample {
	return Sample{
		Position:    geo.Point{Latitude: lat, Longitude: lng},
		AltitudeMSL: alt,
		Timestamp:   ts,
	}
}

func TestTrackValidate(t *testing.T) {
	base := time.Date(2026, 5, 16, 12, 0, 0, 0, time.UTC)

	t.Run("empty track", func(t *testing.T) {
		assert.Error(t, Track{}.Validate())
	})

	t.Run("single sample", func(t *testing.T) {
		track := Track{sampleAt(38.0, -76.0, 100, base)}
		assert.NoError(t, track.Validate())
	})

	t.Run("ordered timestamps", func(t *testing.T) {
		track := Track{
			sampleAt(38.0, -76.0, 100, base),
			sampleAt(38.001, -76.0, 110, base.Add(time.Second)),
			sampleAt(38.002, -76.0, 120, base.Add(2*time.Second)),
		}
		assert.NoError(t, track.Validate())
	})

	t.Run("equal timestamps allowed", func(t *testing.T) {
		track := Track{
			sampleAt(38.0, -76.0, 100, base),
			sampleAt(38.001, -76.0, 110, base),
		}
		assert.NoError(t, track.Validate())
	})

	t.Run("decreasing timestamps rejected", func(t *testing.T) {
		track := Track{
			sampleAt(38.0, -76.0, 100, base.Add(time.Second)),
			sampleAt(38.001, -76.0, 110, base),
		}
		assert.Error(t, track.Validate())
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		track := Track{sampleAt(91.0, -76.0, 100, base)}
		assert.ErrorIs(t, track.Validate(), geo.ErrInvalidCoordinate)
	})
}

func TestTrackFromPolyline(t *testing.T) {
	base := time.Date(2026, 5, 16, 12, 0, 0, 0, time.UTC)

	points := []geo.Point{
		{Latitude: 38.0, Longitude: -76.0},
		{Latitude: 38.001, Longitude: -75.999},
		{Latitude: 38.002, Longitude: -75.998},
	}
	encoded, err := geo.EncodePolyline(points)
	require.NoError(t, err)

	altitudes := []float64{100, 110, 120}
	timestamps := []time.Time{base, base.Add(time.Second), base.Add(2 * time.Second)}

	track, err := TrackFromPolyline(encoded, altitudes, timestamps)
	require.NoError(t, err)
	require.Len(t, track, 3)

	assert.InDelta(t, 38.001, track[1].Position.Latitude, 1e-5)
	assert.Equal(t, 110.0, track[1].AltitudeMSL)
	assert.Equal(t, timestamps[1], track[1].Timestamp)

	// Mismatched lengths are rejected.
	_, err = TrackFromPolyline(encoded, altitudes[:2], timestamps)
	assert.Error(t, err)

	// Out-of-order timestamps are rejected by track validation.
	_, err = TrackFromPolyline(encoded, altitudes, []time.Time{base.Add(time.Hour), base, base})
	assert.Error(t, err)
}

func TestEncodedPath(t *testing.T) {
	base := time.Date(2026, 5, 16, 12, 0, 0, 0, time.UTC)
	track := Track{
		sampleAt(38.0, -76.0, 100, base),
		sampleAt(38.001, -75.999, 110, base.Add(time.Second)),
	}

	encoded, err := EncodedPath(track)
	require.NoError(t, err)

	decoded, err := geo.DecodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.InDelta(t, 38.001, decoded[1].Latitude, 1e-5)
}
