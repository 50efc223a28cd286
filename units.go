package geoloc

import (
	"encoding/json"
	"fmt"
)

// DistanceUnit is the unit distances, radii and bounding box deltas are
// expressed in.
type DistanceUnit int

const (
	Miles DistanceUnit = iota
	NauticalMiles
	Kilometers
	Meters
)

// The divisor constants encode one specific spherical-earth approximation.
// They are lookup values the distance and boundary math is calibrated
// against, not physical constants to refine.
const (
	latitudeDistanceInMiles         = 69.0
	linearDistanceInMiles           = 1609.0
	latitudeDistanceInNauticalMiles = 60.0
	linearDistanceInNauticalMiles   = 1852.0
	latitudeDistanceInKilometers    = 111.045
	linearDistanceInKilometers      = 1000.0
	latitudeDistanceInMeters        = 111045.0
	linearDistanceInMeters          = 1.0

	// earthRadiusKm is the mean radius of Earth in kilometers
	earthRadiusKm = 6371.0
)

// latitudeDivisor returns the approximate length of one degree of latitude
// expressed in unit.
func latitudeDivisor(unit DistanceUnit) float64 {
	switch unit {
	case NauticalMiles:
		return latitudeDistanceInNauticalMiles
	case Kilometers:
		return latitudeDistanceInKilometers
	case Meters:
		return latitudeDistanceInMeters
	default:
		return latitudeDistanceInMiles
	}
}

// linearDivisor returns the kilometer conversion constant for unit. A
// kilometer based distance divided by it lands in unit.
func linearDivisor(unit DistanceUnit) float64 {
	switch unit {
	case NauticalMiles:
		return linearDistanceInNauticalMiles
	case Kilometers:
		return linearDistanceInKilometers
	case Meters:
		return linearDistanceInMeters
	default:
		return linearDistanceInMiles
	}
}

func (u DistanceUnit) String() string {
	switch u {
	case Miles:
		return "miles"
	case NauticalMiles:
		return "nautical_miles"
	case Kilometers:
		return "kilometers"
	case Meters:
		return "meters"
	default:
		return fmt.Sprintf("DistanceUnit(%d)", int(u))
	}
}

// ParseDistanceUnit parses a unit name as produced by String.
func ParseDistanceUnit(name string) (DistanceUnit, error) {
	switch name {
	case "miles":
		return Miles, nil
	case "nautical_miles":
		return NauticalMiles, nil
	case "kilometers":
		return Kilometers, nil
	case "meters":
		return Meters, nil
	default:
		return Miles, fmt.Errorf("unknown distance unit: %q", name)
	}
}

// MarshalJSON encodes the unit as its name.
func (u DistanceUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a unit name, rejecting unknown ones.
func (u *DistanceUnit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := ParseDistanceUnit(name)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
