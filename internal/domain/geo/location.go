package geo

import (
	"errors"
	"math"
	"strings"
)

// Location is a single geographic point. It is immutable by convention:
// holders replace the whole value instead of mutating fields in place.
type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Name      string   `json:"name,omitempty"`
	Bearing   *float64 `json:"bearing,omitempty"` // heading in degrees, 0=North, clockwise
}

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvalidBearing   = errors.New("bearing must be between 0 and 360")
)

// NewLocation constructs a Location and checks coordinate ranges.
func NewLocation(latitude, longitude float64, name string) (Location, error) {
	location := Location{
		Latitude:  latitude,
		Longitude: longitude,
		Name:      strings.TrimSpace(name),
	}
	if err := location.Validate(); err != nil {
		return Location{}, err
	}
	return location, nil
}

// Validate checks invariants of the Location value.
func (location Location) Validate() error {
	if location.Latitude < -90 || location.Latitude > 90 || math.IsNaN(location.Latitude) {
		return ErrInvalidLatitude
	}
	if location.Longitude < -180 || location.Longitude > 180 || math.IsNaN(location.Longitude) {
		return ErrInvalidLongitude
	}
	if location.Bearing != nil {
		// allow exactly 0 and 360 (some SDKs report 360.0 instead of 0.0)
		if *location.Bearing < 0 || *location.Bearing > 360 || math.IsNaN(*location.Bearing) {
			return ErrInvalidBearing
		}
	}
	return nil
}
