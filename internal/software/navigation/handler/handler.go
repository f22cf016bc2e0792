package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"navsim/internal/general/logger"
	"navsim/internal/general/websocket"
	"navsim/internal/ports"

	"github.com/google/uuid"
)

// NavigationHTTPHandler adapts HTTP requests to the navigation session and
// the location directory.
type NavigationHTTPHandler struct {
	svc       ports.NavigationService
	directory ports.DirectoryService
	logger    *logger.Logger
	gateway   *websocket.RendererGateway
}

// NewNavigationHTTPHandler wires an HTTP handler around the session and
// directory services.
func NewNavigationHTTPHandler(
	svc ports.NavigationService,
	directory ports.DirectoryService,
	log *logger.Logger,
	gateway *websocket.RendererGateway,
) *NavigationHTTPHandler {
	return &NavigationHTTPHandler{svc: svc, directory: directory, logger: log, gateway: gateway}
}

// RegisterRoutes mounts all endpoints on the provided mux.
func (handler *NavigationHTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /navigation/location", handler.handleSetCurrentLocation)
	mux.HandleFunc("POST /navigation/destination", handler.handleSetDestination)

	mux.HandleFunc("POST /navigation/waypoints", handler.handleAddWaypoint)
	mux.HandleFunc("DELETE /navigation/waypoints/{waypoint_id}", handler.handleRemoveWaypoint)
	mux.HandleFunc("PUT /navigation/waypoints/order", handler.handleReorderWaypoints)

	mux.HandleFunc("POST /navigation/start", handler.handleStartNavigation)
	mux.HandleFunc("POST /navigation/stop", handler.handleStopNavigation)

	mux.HandleFunc("GET /navigation/state", handler.handleState)
	mux.HandleFunc("GET /navigation/step", handler.handleStep)
	mux.HandleFunc("GET /navigation/progress", handler.handleProgress)
	mux.HandleFunc("GET /navigation/health", handler.handleHealth)

	mux.HandleFunc("GET /locations/search", handler.handleSearch)

	// renderers attach here; the gateway owns the upgrade
	mux.HandleFunc("GET /ws/renderer", handler.gateway.ConnectRenderer)
}

// ----- general helpers -----

// decodeJSON enforces the JSON content type, bounds the body, and decodes
// strictly into dst. It writes the error response itself and reports whether
// decoding succeeded.
func (handler *NavigationHTTPHandler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		handler.httpError(ctx, w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", nil)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			handler.httpError(ctx, w, http.StatusRequestEntityTooLarge, "request body too large", err)
			return false
		}
		handler.httpError(ctx, w, http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
		return false
	}
	return true
}

// jsonResponse encodes data to a buffer first so the status can still be
// controlled on failure.
func (handler *NavigationHTTPHandler) jsonResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	var buf []byte
	var err error

	if data != nil {
		buf, err = json.Marshal(data)
		if err != nil {
			handler.logger.Error(ctx, "response_encode_failed", "Failed to encode response", err, nil)
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
			return
		}
	} else {
		buf = []byte("{}")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

// httpError sends a JSON error response with a message.
func (handler *NavigationHTTPHandler) httpError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	action := "request_failed"
	if status >= 500 {
		action = "http_internal_error"
	} else if status == http.StatusBadRequest {
		action = "validation_failed"
	} else if status == http.StatusUnsupportedMediaType {
		action = "unsupported_media_type"
	}
	handler.logger.Error(ctx, action, msg, err, nil)

	type errBody struct {
		Error string `json:"error"`
	}
	handler.jsonResponse(ctx, w, status, errBody{Error: msg})
}

// withReqID extracts or generates a request ID and adds it to the context.
func (handler *NavigationHTTPHandler) withReqID(ctx context.Context, r *http.Request) context.Context {
	reqID := r.Header.Get("X-Request-ID")
	if strings.TrimSpace(reqID) == "" {
		reqID = uuid.NewString()
	}
	return handler.logger.WithRequestID(ctx, reqID)
}

// ----- Handler: GET /navigation/health -----

// handleHealth returns a minimal JSON health status payload.
func (handler *NavigationHTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	type resp struct {
		Status string `json:"status"`
	}
	_ = json.NewEncoder(w).Encode(resp{Status: "ok"})
}
