package service

import (
	"context"

	"navsim/internal/domain/geo"
	"navsim/internal/ports"
)

// AddWaypoint appends a waypoint with a freshly generated unique id to the
// end of the waypoint sequence and returns it together with the resulting
// snapshot.
func (s *Session) AddWaypoint(ctx context.Context, loc geo.Location) (geo.Waypoint, ports.NavigationSnapshot) {
	waypoint := geo.NewWaypoint(loc)

	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return waypoint, s.snapshotLocked()
	}
	s.waypoints = append(s.waypoints, waypoint)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug(s.ctxWithSession(ctx), "waypoint_added", "Waypoint appended",
		map[string]any{"waypoint_id": waypoint.ID, "count": len(snap.Waypoints)})
	s.publish(snap)
	return waypoint, snap
}

// RemoveWaypoint removes the waypoint with the given id; absent ids are a
// no-op.
func (s *Session) RemoveWaypoint(ctx context.Context, id string) ports.NavigationSnapshot {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}

	removed := false
	kept := s.waypoints[:0]
	for _, waypoint := range s.waypoints {
		if waypoint.ID == id {
			removed = true
			continue
		}
		kept = append(kept, waypoint)
	}
	s.waypoints = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if removed {
		s.logger.Debug(s.ctxWithSession(ctx), "waypoint_removed", "Waypoint removed",
			map[string]any{"waypoint_id": id, "count": len(snap.Waypoints)})
		s.publish(snap)
	}
	return snap
}

// ReorderWaypoints replaces the waypoint sequence with the waypoints
// matching ids, in the given order. Ids with no matching waypoint are
// silently skipped, and waypoints whose id is omitted from ids are dropped:
// reorder doubles as a filter. UI code depends on that exact behavior, so
// keep it.
func (s *Session) ReorderWaypoints(ctx context.Context, ids []string) ports.NavigationSnapshot {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}

	byID := make(map[string]geo.Waypoint, len(s.waypoints))
	for _, waypoint := range s.waypoints {
		byID[waypoint.ID] = waypoint
	}

	next := make([]geo.Waypoint, 0, len(ids))
	for _, id := range ids {
		if waypoint, ok := byID[id]; ok {
			next = append(next, waypoint)
		}
	}
	dropped := len(s.waypoints) - len(next)
	s.waypoints = next
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug(s.ctxWithSession(ctx), "waypoints_reordered", "Waypoint sequence replaced",
		map[string]any{"count": len(snap.Waypoints), "dropped": dropped})
	s.publish(snap)
	return snap
}
