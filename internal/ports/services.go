package ports

import (
	"context"
	"time"

	"navsim/internal/domain/geo"
	"navsim/internal/domain/place"
)

// ----- DTOs for the Navigation Service -----

// Viewport tells rendering backends where to point the camera after a route
// is computed: the midpoint of the trip at a zoom that keeps the whole route
// roughly visible.
type Viewport struct {
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
	Zoom            float64 `json:"zoom"`
}

// NavigationSnapshot is the read-only view of a navigation session that
// rendering backends consume. Every mutation produces a fresh snapshot; a
// snapshot never aliases live session state.
type NavigationSnapshot struct {
	SessionID              string              `json:"session_id"`
	CurrentLocation        *geo.Location       `json:"current_location,omitempty"`
	Destination            *geo.Location       `json:"destination,omitempty"`
	Waypoints              []geo.Waypoint      `json:"waypoints"`
	RoutePath              []geo.Location      `json:"route_path"`
	Turns                  []geo.TurnDirection `json:"turns"`
	IsNavigating           bool                `json:"is_navigating"`
	EstimatedTimeOfArrival *time.Time          `json:"estimated_time_of_arrival,omitempty"`
	EstimatedDistanceKM    *float64            `json:"estimated_distance_km,omitempty"`
	CurrentStepIndex       int                 `json:"current_step_index"`
	Viewport               *Viewport           `json:"viewport,omitempty"`
}

// Notification is an advisory, user-visible message (the toast of the UI
// layer). Notifications never carry fatal conditions.
type Notification struct {
	Level   string    `json:"level"` // "info" | "warning"
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
)

// ----- Navigation Service Interface -----

// NavigationService exposes the boundary of a navigation session. Mutators
// return the resulting snapshot so transport adapters can answer with the
// state the mutation produced, not a later one.
type NavigationService interface {
	SetCurrentLocation(ctx context.Context, loc geo.Location) NavigationSnapshot
	SetDestination(ctx context.Context, loc geo.Location) NavigationSnapshot
	AddWaypoint(ctx context.Context, loc geo.Location) (geo.Waypoint, NavigationSnapshot)
	RemoveWaypoint(ctx context.Context, id string) NavigationSnapshot
	ReorderWaypoints(ctx context.Context, ids []string) NavigationSnapshot

	StartNavigation(ctx context.Context) NavigationSnapshot
	EndNavigation(ctx context.Context) NavigationSnapshot

	CurrentStep() *geo.TurnDirection
	NextTurn() *geo.TurnDirection
	Progress() float64
	Snapshot() NavigationSnapshot

	Attach(obs Observer)
	Close()
}

// Observer receives session state pushes. Implementations must tolerate
// being one of many observers (or the only one) without changing session
// behavior; slow observers must not block the session.
type Observer interface {
	OnSnapshot(snap NavigationSnapshot)
	OnNotification(n Notification)
}

// SnapshotSource is the narrow read interface transport adapters use to
// serve the current state to a newly connected renderer.
type SnapshotSource interface {
	Snapshot() NavigationSnapshot
}

// ----- Directory Service Interface -----

// DirectoryService searches the in-memory location directory.
type DirectoryService interface {
	Search(ctx context.Context, query string) []place.Place
	FindFirst(ctx context.Context, query string) (place.Place, bool)
}
