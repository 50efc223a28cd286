package geoloc

import (
	"errors"
	"math"
)

// ErrInvalidCoordinate is returned when a boundaries origin lies outside the
// legal latitude/longitude range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// CoordinateBoundaries approximates a circle of a given radius around an
// origin with an axis-aligned latitude/longitude envelope, e.g. for database
// range queries ahead of an exact InRadius check. The derived bounds are
// recomputed eagerly on every mutation, so reads always reflect the current
// origin, distance and unit.
//
// The struct is not safe for concurrent mutation; a holder sharing it across
// goroutines must serialize SetCoords/SetDistance calls externally.
type CoordinateBoundaries struct {
	latitude     float64
	longitude    float64
	distance     float64
	distanceUnit DistanceUnit
	maxLon       float64
	minLon       float64
	maxLat       float64
	minLat       float64
}

// NewCoordinateBoundaries creates boundaries of the given distance around
// origin. The unit defaults to Miles when omitted. Returns
// ErrInvalidCoordinate if origin is outside [-90, 90] latitude or
// [-180, 180] longitude.
func NewCoordinateBoundaries(origin Coordinate, distance float64, unit ...DistanceUnit) (*CoordinateBoundaries, error) {
	if !validCoordinate(origin) {
		return nil, ErrInvalidCoordinate
	}

	b := &CoordinateBoundaries{
		latitude:     origin.Latitude,
		longitude:    origin.Longitude,
		distance:     distance,
		distanceUnit: unitOrDefault(unit),
	}
	b.recalculate()

	return b, nil
}

func unitOrDefault(unit []DistanceUnit) DistanceUnit {
	if len(unit) == 0 {
		return Miles
	}
	return unit[0]
}

func validCoordinate(c Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// recalculate derives the envelope with a planar small-angle approximation:
// longitude degrees shrink by cos(latitude) toward the poles, so the
// longitude delta is inflated by 1/|cos(lat)|. At ±90° the divisor is
// (numerically almost) zero and the delta blows up far past ±180°, which
// degrades to "no longitude filter". No guard is applied.
func (b *CoordinateBoundaries) recalculate() {
	latDelta := b.distance / latitudeDivisor(b.distanceUnit)
	lonDelta := latDelta / math.Abs(math.Cos(b.latitude*math.Pi/180))

	b.minLat = b.latitude - latDelta
	b.maxLat = b.latitude + latDelta
	b.minLon = b.longitude - lonDelta
	b.maxLon = b.longitude + lonDelta
}

// SetCoords replaces the origin and recomputes the envelope with the current
// distance and unit.
func (b *CoordinateBoundaries) SetCoords(coords Coordinate) {
	b.latitude = coords.Latitude
	b.longitude = coords.Longitude
	b.recalculate()
}

// SetDistance replaces the distance and recomputes the envelope with the
// current origin. The unit is always reset: to the passed value, or to Miles
// when omitted, never to a previously set unit. Negative distances are not
// rejected and produce an inverted envelope (min above max).
func (b *CoordinateBoundaries) SetDistance(distance float64, unit ...DistanceUnit) {
	b.distance = distance
	b.distanceUnit = unitOrDefault(unit)
	b.recalculate()
}

// MinLatitude returns the cached southern bound.
func (b *CoordinateBoundaries) MinLatitude() float64 {
	return b.minLat
}

// MaxLatitude returns the cached northern bound.
func (b *CoordinateBoundaries) MaxLatitude() float64 {
	return b.maxLat
}

// MinLongitude returns the cached western bound.
func (b *CoordinateBoundaries) MinLongitude() float64 {
	return b.minLon
}

// MaxLongitude returns the cached eastern bound.
func (b *CoordinateBoundaries) MaxLongitude() float64 {
	return b.maxLon
}

// Contains reports whether c falls inside the envelope.
func (b *CoordinateBoundaries) Contains(c Coordinate) bool {
	return c.Latitude >= b.minLat && c.Latitude <= b.maxLat &&
		c.Longitude >= b.minLon && c.Longitude <= b.maxLon
}
