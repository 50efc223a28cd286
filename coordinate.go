// Package geoloc provides spherical-earth geolocation primitives: coordinates,
// great-circle distances in several units and radius-derived lat/lon
// bounding boxes usable as cheap pre-filters before an exact distance check.
package geoloc

import (
	"fmt"
	"math"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate constructs a Coordinate from raw values. Out-of-range inputs
// are stored as given; use NewNormalizedCoordinate to wrap them.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Latitude:  lat,
		Longitude: lon,
	}
}

// NewNormalizedCoordinate wraps latitude into [-90, 90] and longitude into
// [-180, 180] before constructing the Coordinate.
func NewNormalizedCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Latitude:  WrapToBounds(lat, 90),
		Longitude: WrapToBounds(lon, 180),
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%f,%f)", c.Latitude, c.Longitude)
}

// DistanceFrom returns the great-circle distance between c and other,
// expressed in unit.
func (c Coordinate) DistanceFrom(other Coordinate, unit DistanceUnit) float64 {
	distanceKm := haversineDistanceKm(c.Latitude, c.Longitude, other.Latitude, other.Longitude)
	return distanceKm * linearDivisor(Kilometers) / linearDivisor(unit)
}

// InRadius reports whether other is within radius of c, with radius
// expressed in unit.
func (c Coordinate) InRadius(other Coordinate, radius float64, unit DistanceUnit) bool {
	return c.DistanceFrom(other, unit) <= radius
}

// Closest returns the candidate with the smallest geo distance to origin and
// that distance in unit. The third return is false when candidates is empty.
func Closest(origin Coordinate, candidates []Coordinate, unit DistanceUnit) (Coordinate, float64, bool) {
	var best Coordinate
	minDistance := math.MaxFloat64
	found := false

	for _, candidate := range candidates {
		distance := origin.DistanceFrom(candidate, unit)
		if distance < minDistance {
			minDistance = distance
			best = candidate
			found = true
		}
	}

	if !found {
		return Coordinate{}, 0, false
	}

	return best, minDistance, true
}

// FilterInRadius returns the candidates within radius of origin, with radius
// expressed in unit. Order of candidates is preserved.
func FilterInRadius(origin Coordinate, candidates []Coordinate, radius float64, unit DistanceUnit) []Coordinate {
	var within []Coordinate
	for _, candidate := range candidates {
		if origin.InRadius(candidate, radius, unit) {
			within = append(within, candidate)
		}
	}

	return within
}
