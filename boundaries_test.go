package geoloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCoordinateBoundaries(t *testing.T) {
	bounds, err := NewCoordinateBoundaries(NewCoordinate(0.0, 0.0), 1.0)
	require.NoError(t, err)

	require.InDelta(t, 0.014492753623188406, bounds.MaxLongitude(), 1e-9)
	require.Equal(t, bounds.MaxLongitude(), -bounds.MinLongitude())
	require.Equal(t, bounds.MaxLatitude(), -bounds.MinLatitude())
	require.Equal(t, bounds.MaxLatitude(), bounds.MaxLongitude(), "at the equator both deltas match")
}

func TestNewCoordinateBoundariesInvalidOrigin(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{name: "Latitude too high", lat: 91.0, lon: 0.0},
		{name: "Latitude too low", lat: -91.0, lon: 0.0},
		{name: "Longitude too high", lat: 0.0, lon: 181.0},
		{name: "Longitude too low", lat: 0.0, lon: -181.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds, err := NewCoordinateBoundaries(NewCoordinate(tt.lat, tt.lon), 1.0)
			require.ErrorIs(t, err, ErrInvalidCoordinate)
			require.Nil(t, bounds)
		})
	}
}

func TestCoordinateBoundariesUnits(t *testing.T) {
	for _, unit := range []DistanceUnit{Miles, NauticalMiles, Kilometers, Meters} {
		bounds, err := NewCoordinateBoundaries(NewCoordinate(0.0, 0.0), 10.0, unit)
		require.NoError(t, err)
		require.InDelta(t, 10.0/latitudeDivisor(unit), bounds.MaxLatitude(), 1e-12)
	}
}

func TestSetCoords(t *testing.T) {
	bounds, err := NewCoordinateBoundaries(NewCoordinate(0.0, 0.0), 1.0)
	require.NoError(t, err)
	minLat := bounds.MinLatitude()
	maxLon := bounds.MaxLongitude()

	bounds.SetCoords(NewCoordinate(1.0, 1.5))

	require.NotEqual(t, minLat, bounds.MinLatitude())
	require.InDelta(t, 1.0-1.0/69.0, bounds.MinLatitude(), 1e-12)
	require.InDelta(t, 1.0+1.0/69.0, bounds.MaxLatitude(), 1e-12)

	// Longitude delta grows away from the equator
	require.Greater(t, bounds.MaxLongitude()-1.5, maxLon)
}

func TestSetDistanceResetsUnit(t *testing.T) {
	bounds, err := NewCoordinateBoundaries(NewCoordinate(0.0, 0.0), 5.0, Kilometers)
	require.NoError(t, err)
	require.InDelta(t, 5.0/111.045, bounds.MaxLatitude(), 1e-12)

	// Omitting the unit resets it to Miles, it never sticks to Kilometers
	bounds.SetDistance(5.0)
	require.InDelta(t, 5.0/69.0, bounds.MaxLatitude(), 1e-12)
	require.InDelta(t, -5.0/69.0, bounds.MinLatitude(), 1e-12)
	require.InDelta(t, 5.0/69.0, bounds.MaxLongitude(), 1e-12)
	require.InDelta(t, -5.0/69.0, bounds.MinLongitude(), 1e-12)

	bounds.SetDistance(120.0, NauticalMiles)
	require.InDelta(t, 2.0, bounds.MaxLatitude(), 1e-12)
}

func TestBoundariesAtPole(t *testing.T) {
	bounds, err := NewCoordinateBoundaries(NewCoordinate(90.0, 0.0), 1.0)
	require.NoError(t, err)

	// cos(90°) is numerically almost zero, so the longitude bounds shoot far
	// past ±180 and the filter degrades to "all longitudes"
	require.Greater(t, bounds.MaxLongitude(), 180.0)
	require.Less(t, bounds.MinLongitude(), -180.0)
	require.False(t, math.IsInf(bounds.MaxLongitude(), 0))
	require.InDelta(t, 90.0+1.0/69.0, bounds.MaxLatitude(), 1e-12)
}

func TestNegativeDistanceInvertsBounds(t *testing.T) {
	bounds, err := NewCoordinateBoundaries(NewCoordinate(10.0, 10.0), 1.0)
	require.NoError(t, err)

	bounds.SetDistance(-1.0)
	require.Greater(t, bounds.MinLatitude(), bounds.MaxLatitude())
	require.Greater(t, bounds.MinLongitude(), bounds.MaxLongitude())
}

func TestContains(t *testing.T) {
	origin := NewCoordinate(45.815, 15.9819)
	bounds, err := NewCoordinateBoundaries(origin, 50.0, Kilometers)
	require.NoError(t, err)

	require.True(t, bounds.Contains(origin))
	require.True(t, bounds.Contains(NewCoordinate(45.9, 16.0)))
	require.False(t, bounds.Contains(NewCoordinate(48.2082, 16.3738)))
	require.False(t, bounds.Contains(NewCoordinate(45.815, 17.5)))
}
