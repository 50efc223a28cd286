package geoloc

import "math"

// WrapToBounds wraps value into [-bound, bound], treating the range as
// periodic with period 2*bound. Out-of-range values wrap around the globe
// instead of being clamped; exactly -bound is kept as-is.
func WrapToBounds(value, bound float64) float64 {
	for value < -bound || value > bound {
		if value > bound {
			value -= 2 * bound
		} else {
			value += 2 * bound
		}
	}

	return value
}

// haversineDistanceKm calculates the great-circle distance between two points
// on Earth in kilometers.
func haversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert degrees to radians
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	diffLat := lat2Rad - lat1Rad
	diffLon := lon2Rad - lon1Rad

	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(diffLon/2), 2)

	// Rounding can push a just past 1 for near-antipodal points, which would
	// make Asin return NaN
	a = math.Min(math.Max(a, 0), 1)

	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}
