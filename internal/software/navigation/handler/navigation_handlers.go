package handler

import (
	"net/http"

	"navsim/internal/domain/geo"
	"navsim/internal/domain/place"
)

// ----- Handler: POST /navigation/start -----

// Starting navigation without both endpoints is an advisory no-op, not an
// HTTP error: the response carries is_navigating=false and the advisory
// reaches observers as a notification.
func (handler *NavigationHTTPHandler) handleStartNavigation(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	snap := handler.svc.StartNavigation(ctx)
	handler.jsonResponse(ctx, w, http.StatusOK, snap)
}

// ----- Handler: POST /navigation/stop -----

func (handler *NavigationHTTPHandler) handleStopNavigation(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	snap := handler.svc.EndNavigation(ctx)
	handler.jsonResponse(ctx, w, http.StatusOK, snap)
}

// ----- Handler: GET /navigation/state -----

func (handler *NavigationHTTPHandler) handleState(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	handler.jsonResponse(ctx, w, http.StatusOK, handler.svc.Snapshot())
}

// ----- Handler: GET /navigation/step -----

type stepResponse struct {
	CurrentStep     *geo.TurnDirection `json:"current_step"`
	NextTurn        *geo.TurnDirection `json:"next_turn"`
	ProgressPercent float64            `json:"progress_percent"`
}

func (handler *NavigationHTTPHandler) handleStep(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	handler.jsonResponse(ctx, w, http.StatusOK, stepResponse{
		CurrentStep:     handler.svc.CurrentStep(),
		NextTurn:        handler.svc.NextTurn(),
		ProgressPercent: handler.svc.Progress(),
	})
}

// ----- Handler: GET /navigation/progress -----

type progressResponse struct {
	ProgressPercent        float64  `json:"progress_percent"`
	EstimatedDistanceKM    *float64 `json:"estimated_distance_km"`
	EstimatedTimeOfArrival any      `json:"estimated_time_of_arrival"`
	IsNavigating           bool     `json:"is_navigating"`
}

func (handler *NavigationHTTPHandler) handleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	snap := handler.svc.Snapshot()
	resp := progressResponse{
		ProgressPercent:     handler.svc.Progress(),
		EstimatedDistanceKM: snap.EstimatedDistanceKM,
		IsNavigating:        snap.IsNavigating,
	}
	if snap.EstimatedTimeOfArrival != nil {
		resp.EstimatedTimeOfArrival = snap.EstimatedTimeOfArrival
	}
	handler.jsonResponse(ctx, w, http.StatusOK, resp)
}

// ----- Handler: GET /locations/search -----

type searchResponse struct {
	Results []place.Place `json:"results"`
	Count   int           `json:"count"`
}

func (handler *NavigationHTTPHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	results := handler.directory.Search(ctx, r.URL.Query().Get("q"))
	if results == nil {
		results = []place.Place{}
	}
	handler.jsonResponse(ctx, w, http.StatusOK, searchResponse{
		Results: results,
		Count:   len(results),
	})
}
