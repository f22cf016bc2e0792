package handler

import (
	"net/http"
	"strings"

	"navsim/internal/domain/geo"
	"navsim/internal/ports"
)

// ----- Handler: POST /navigation/waypoints -----

type addWaypointResponse struct {
	Waypoint geo.Waypoint             `json:"waypoint"`
	State    ports.NavigationSnapshot `json:"state"`
}

func (handler *NavigationHTTPHandler) handleAddWaypoint(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	location, ok := handler.decodeLocation(ctx, w, r)
	if !ok {
		return
	}

	waypoint, snap := handler.svc.AddWaypoint(ctx, location)
	handler.jsonResponse(ctx, w, http.StatusCreated, addWaypointResponse{
		Waypoint: waypoint,
		State:    snap,
	})
}

// ----- Handler: DELETE /navigation/waypoints/{waypoint_id} -----

func (handler *NavigationHTTPHandler) handleRemoveWaypoint(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	waypointID := strings.TrimSpace(r.PathValue("waypoint_id"))
	if waypointID == "" {
		handler.httpError(ctx, w, http.StatusBadRequest, "waypoint_id is required", nil)
		return
	}

	// removal of an unknown id is a documented no-op, so this always 200s
	snap := handler.svc.RemoveWaypoint(ctx, waypointID)
	handler.jsonResponse(ctx, w, http.StatusOK, snap)
}

// ----- Handler: PUT /navigation/waypoints/order -----

type reorderWaypointsRequest struct {
	WaypointIDs []string `json:"waypoint_ids"`
}

func (handler *NavigationHTTPHandler) handleReorderWaypoints(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	var req reorderWaypointsRequest
	if !handler.decodeJSON(ctx, w, r, &req) {
		return
	}
	if req.WaypointIDs == nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "waypoint_ids is required", nil)
		return
	}

	snap := handler.svc.ReorderWaypoints(ctx, req.WaypointIDs)
	handler.jsonResponse(ctx, w, http.StatusOK, snap)
}
