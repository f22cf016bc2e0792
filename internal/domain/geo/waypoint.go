package geo

import (
	"time"

	"github.com/google/uuid"
)

// Waypoint is a user-added intermediate stop between the current location
// and the destination. Order within a waypoint sequence is significant: it
// defines the leg order of the route.
type Waypoint struct {
	Location

	ID                  string     `json:"id"`
	DistanceFromStartKM *float64   `json:"distance_from_start_km,omitempty"`
	ArrivalTime         *time.Time `json:"arrival_time,omitempty"`
}

// NewWaypoint wraps a location with a freshly generated unique id.
func NewWaypoint(location Location) Waypoint {
	return Waypoint{
		Location: location,
		ID:       uuid.NewString(),
	}
}
