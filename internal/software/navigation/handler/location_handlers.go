package handler

import (
	"context"
	"net/http"

	"navsim/internal/domain/geo"
)

// --- Request DTO (HTTP boundary) ---

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// decodeLocation decodes and range-checks a location body. The session core
// stays permissive; the transport boundary is where bad coordinates are
// rejected.
func (handler *NavigationHTTPHandler) decodeLocation(ctx context.Context, w http.ResponseWriter, r *http.Request) (geo.Location, bool) {
	var req locationRequest
	if !handler.decodeJSON(ctx, w, r, &req) {
		return geo.Location{}, false
	}

	location, err := geo.NewLocation(req.Latitude, req.Longitude, req.Name)
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return geo.Location{}, false
	}
	return location, true
}

// ----- Handler: POST /navigation/location -----

func (handler *NavigationHTTPHandler) handleSetCurrentLocation(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	location, ok := handler.decodeLocation(ctx, w, r)
	if !ok {
		return
	}

	snap := handler.svc.SetCurrentLocation(ctx, location)
	handler.jsonResponse(ctx, w, http.StatusOK, snap)
}

// ----- Handler: POST /navigation/destination -----

func (handler *NavigationHTTPHandler) handleSetDestination(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	location, ok := handler.decodeLocation(ctx, w, r)
	if !ok {
		return
	}

	snap := handler.svc.SetDestination(ctx, location)
	handler.jsonResponse(ctx, w, http.StatusOK, snap)
}
