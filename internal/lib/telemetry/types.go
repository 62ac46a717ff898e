// Package telemetry defines the position report types consumed by the
// obstacle collision evaluation. Reports are produced and validated by the
// surrounding system; this package only reads them.
package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/openuas/airspace/internal/lib/geo"
)

// Sample is a single position report for a vehicle: a geodetic position,
// an altitude above mean sea level in feet (may be negative), and the time
// the report was taken.
type Sample struct {
	Position    geo.Point `json:"position"`
	AltitudeMSL float64   `json:"altitude_msl"`
	Timestamp   time.Time `json:"timestamp"`
}

// Track is an ordered sequence of samples for one vehicle. Order is owned
// by the producer; consumers never re-sort.
type Track []Sample

// Validate checks the track invariants: non-empty, every position within
// geodetic range, and timestamps non-decreasing in the supplied order.
func (t Track) Validate() error {
	if len(t) == 0 {
		return errors.New("track is empty")
	}
	for i, s := range t {
		if !s.Position.Valid() {
			return fmt.Errorf("sample %d: %w", i, geo.ErrInvalidCoordinate)
		}
		if i > 0 && s.Timestamp.Before(t[i-1].Timestamp) {
			return fmt.Errorf("sample %d: timestamp %s precedes sample %d", i, s.Timestamp.Format(time.RFC3339), i-1)
		}
	}
	return nil
}
