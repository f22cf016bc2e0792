package service

import (
	"context"
	"math"
	"time"

	"navsim/internal/domain/geo"
	"navsim/internal/ports"
)

// StartNavigation computes a route from the current location through all
// waypoints to the destination and flips the session into the navigating
// state. When either endpoint is unset the call is a no-op surfaced to
// observers as an advisory notification, never as an error that unwinds.
func (s *Session) StartNavigation(ctx context.Context) ports.NavigationSnapshot {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}
	if s.current == nil || s.destination == nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.logger.Info(s.ctxWithSession(ctx), "navigation_precondition_failed",
			"Navigation not started: current location or destination is unset", nil)
		s.notifyObservers(ports.Notification{
			Level:   ports.NotificationWarning,
			Message: "Set both a current location and a destination before starting navigation",
			SentAt:  time.Now().UTC(),
		})
		return snap
	}

	// 1) Ordered stop list: current -> waypoints -> destination.
	stops := make([]geo.Location, 0, len(s.waypoints)+2)
	stops = append(stops, *s.current)
	for _, waypoint := range s.waypoints {
		stops = append(stops, waypoint.Location)
	}
	stops = append(stops, *s.destination)

	// 2) One street-grid sub-route per leg. The last point of every
	// non-final sub-route is dropped so junctions are not duplicated.
	var path []geo.Location
	for i := 0; i < len(stops)-1; i++ {
		sub := geo.StreetGridRoute(stops[i], stops[i+1], s.rng)
		if i < len(stops)-2 {
			sub = sub[:len(sub)-1]
		}
		path = append(path, sub...)
	}

	startedAt := time.Now().UTC()
	totalKM := pathDistanceKM(path)
	eta := startedAt.Add(travelTime(totalKM, s.cfg.SpeedKMH))

	// 3) Install the session state as one atomic flip.
	s.routePath = path
	s.isNavigating = true
	s.turns = deriveTurns(path)
	s.stepIndex = 0
	s.distanceKM = &totalKM
	s.eta = &eta
	s.viewport = viewportFor(*s.current, *s.destination)
	s.annotateWaypointsLocked(startedAt)

	// 4) Exactly one live progress timer per navigating session.
	s.armProgressTimerLocked()

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info(s.ctxWithSession(ctx), "navigation_started", "Navigation started",
		map[string]any{
			"route_points": len(snap.RoutePath),
			"turns":        len(snap.Turns),
			"distance_km":  totalKM,
			"eta":          eta,
		})
	s.notifyObservers(ports.Notification{
		Level:   ports.NotificationInfo,
		Message: "Navigation started",
		SentAt:  time.Now().UTC(),
	})
	s.publish(snap)
	return snap
}

// EndNavigation clears all navigation-derived state and cancels the
// progress timer. Waypoints, current location, and destination survive so
// the same trip can be restarted.
func (s *Session) EndNavigation(ctx context.Context) ports.NavigationSnapshot {
	s.mu.Lock()
	s.stopProgressLocked()
	s.routePath = nil
	s.turns = nil
	s.stepIndex = 0
	s.eta = nil
	s.distanceKM = nil
	s.viewport = nil
	s.isNavigating = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info(s.ctxWithSession(ctx), "navigation_ended", "Navigation ended", nil)
	s.notifyObservers(ports.Notification{
		Level:   ports.NotificationInfo,
		Message: "Navigation ended",
		SentAt:  time.Now().UTC(),
	})
	s.publish(snap)
	return snap
}

// annotateWaypointsLocked fills in the per-waypoint trip metrics: cumulative
// distance over the stop sequence and the arrival time that follows from
// the assumed constant speed. Callers hold s.mu.
func (s *Session) annotateWaypointsLocked(startedAt time.Time) {
	previous := *s.current
	cumulativeKM := 0.0
	for i := range s.waypoints {
		cumulativeKM += geo.DistanceKM(
			previous.Latitude, previous.Longitude,
			s.waypoints[i].Latitude, s.waypoints[i].Longitude,
		)
		km := cumulativeKM
		at := startedAt.Add(travelTime(cumulativeKM, s.cfg.SpeedKMH))
		s.waypoints[i].DistanceFromStartKM = &km
		s.waypoints[i].ArrivalTime = &at
		previous = s.waypoints[i].Location
	}
}

// pathDistanceKM sums the haversine distance over consecutive path pairs.
func pathDistanceKM(path []geo.Location) float64 {
	var total float64
	for i := 0; i < len(path)-1; i++ {
		total += geo.DistanceKM(
			path[i].Latitude, path[i].Longitude,
			path[i+1].Latitude, path[i+1].Longitude,
		)
	}
	return total
}

// travelTime converts a distance at the assumed constant speed into a
// duration.
func travelTime(distanceKM, speedKMH float64) time.Duration {
	return time.Duration(distanceKM / speedKMH * float64(time.Hour))
}

// viewportFor centers the camera on the midpoint of the trip with a zoom
// that shrinks as the coordinate span grows, so the whole route stays
// roughly visible.
func viewportFor(current, destination geo.Location) *ports.Viewport {
	maxDiff := math.Max(
		math.Abs(destination.Latitude-current.Latitude),
		math.Abs(destination.Longitude-current.Longitude),
	)

	// coincident endpoints get a close-in default instead of log2(0)
	zoom := 16.0
	if maxDiff > 0 {
		zoom = math.Max(2, 10-math.Log2(maxDiff*111))
	}

	return &ports.Viewport{
		CenterLatitude:  (current.Latitude + destination.Latitude) / 2,
		CenterLongitude: (current.Longitude + destination.Longitude) / 2,
		Zoom:            zoom,
	}
}
