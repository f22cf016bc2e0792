package handler

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"navsim/internal/general/logger"
	wsgateway "navsim/internal/general/websocket"
	"navsim/internal/ports"
	directoryservice "navsim/internal/software/directory/service"
	"navsim/internal/software/navigation/service"

	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.New("navigation-handler-test")

	session := service.NewSession(log,
		service.Config{SpeedKMH: 50, StepInterval: time.Hour},
		service.WithRandSource(rand.New(rand.NewPCG(42, 1))))
	t.Cleanup(session.Close)

	directory := directoryservice.NewDirectoryService(log)
	gateway := wsgateway.NewRendererGateway(log, session, time.Second)
	session.Attach(gateway)

	mux := http.NewServeMux()
	NewNavigationHTTPHandler(session, directory, log, gateway).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// ----- location endpoints -----

func TestSetLocationAndDestination(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/navigation/location",
		`{"latitude": 40.7128, "longitude": -74.0060, "name": "City Hall Park"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap ports.NavigationSnapshot
	decodeBody(t, resp, &snap)
	require.NotNil(t, snap.CurrentLocation)
	assert.Equal(t, "City Hall Park", snap.CurrentLocation.Name)
	assert.False(t, snap.IsNavigating)

	resp = postJSON(t, srv.URL+"/navigation/destination",
		`{"latitude": 40.7527, "longitude": -73.9772}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &snap)
	require.NotNil(t, snap.Destination)
	assert.InDelta(t, 40.7527, snap.Destination.Latitude, 1e-9)
}

func TestSetLocationRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	// out-of-range latitude
	resp := postJSON(t, srv.URL+"/navigation/location", `{"latitude": 95, "longitude": 0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// unknown field (strict decoding)
	resp = postJSON(t, srv.URL+"/navigation/location", `{"latitude": 40, "longitude": -74, "altitude": 10}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// wrong content type
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/navigation/location",
		strings.NewReader(`{"latitude": 40, "longitude": -74}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	resp.Body.Close()
}

// ----- waypoint endpoints -----

func TestWaypointLifecycle(t *testing.T) {
	srv := newTestServer(t)

	add := func(body string) addWaypointResponse {
		resp := postJSON(t, srv.URL+"/navigation/waypoints", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var out addWaypointResponse
		decodeBody(t, resp, &out)
		require.NotEmpty(t, out.Waypoint.ID)
		return out
	}

	a := add(`{"latitude": 40.71, "longitude": -74.00, "name": "first"}`)
	b := add(`{"latitude": 40.72, "longitude": -74.01, "name": "second"}`)
	assert.Len(t, b.State.Waypoints, 2)

	// reorder doubles as filter: keep only b
	body, err := json.Marshal(map[string][]string{"waypoint_ids": {b.Waypoint.ID}})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/navigation/waypoints/order", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap ports.NavigationSnapshot
	decodeBody(t, resp, &snap)
	require.Len(t, snap.Waypoints, 1)
	assert.Equal(t, b.Waypoint.ID, snap.Waypoints[0].ID)
	_ = a

	// delete the survivor
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/navigation/waypoints/"+b.Waypoint.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &snap)
	assert.Empty(t, snap.Waypoints)

	// deleting an unknown id is still 200: removal is a documented no-op
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/navigation/waypoints/no-such-id", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestReorderRequiresWaypointIDs(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/navigation/waypoints/order",
		strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ----- navigation lifecycle -----

func TestStartWithoutEndpointsIsAdvisory(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/navigation/start", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap ports.NavigationSnapshot
	decodeBody(t, resp, &snap)
	assert.False(t, snap.IsNavigating)
}

func TestFullNavigationFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/navigation/location", `{"latitude": 40.70, "longitude": -74.00}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, srv.URL+"/navigation/destination", `{"latitude": 40.75, "longitude": -73.98}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/navigation/start", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap ports.NavigationSnapshot
	decodeBody(t, resp, &snap)
	require.True(t, snap.IsNavigating)
	assert.NotEmpty(t, snap.RoutePath)
	assert.NotEmpty(t, snap.Turns)
	assert.NotNil(t, snap.EstimatedDistanceKM)
	assert.NotNil(t, snap.EstimatedTimeOfArrival)
	assert.NotNil(t, snap.Viewport)

	// step view reflects the start marker
	stepResp, err := http.Get(srv.URL + "/navigation/step")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, stepResp.StatusCode)
	var step stepResponse
	decodeBody(t, stepResp, &step)
	require.NotNil(t, step.CurrentStep)
	assert.Equal(t, "Start navigation", step.CurrentStep.Instruction)
	assert.Equal(t, 0.0, step.ProgressPercent)

	// progress view
	progResp, err := http.Get(srv.URL + "/navigation/progress")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, progResp.StatusCode)
	var prog progressResponse
	decodeBody(t, progResp, &prog)
	assert.True(t, prog.IsNavigating)
	require.NotNil(t, prog.EstimatedDistanceKM)
	assert.Greater(t, *prog.EstimatedDistanceKM, 0.0)

	// stop preserves the trip setup
	resp = postJSON(t, srv.URL+"/navigation/stop", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &snap)
	assert.False(t, snap.IsNavigating)
	assert.Empty(t, snap.RoutePath)
	assert.NotNil(t, snap.CurrentLocation)
	assert.NotNil(t, snap.Destination)

	// state endpoint agrees
	stateResp, err := http.Get(srv.URL + "/navigation/state")
	require.NoError(t, err)
	decodeBody(t, stateResp, &snap)
	assert.False(t, snap.IsNavigating)
}

// ----- search and health -----

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/locations/search?q=grand+central")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out searchResponse
	decodeBody(t, resp, &out)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Grand Central Terminal", out.Results[0].Name)

	// no match still returns a JSON array, not null
	resp, err = http.Get(srv.URL + "/locations/search?q=atlantis")
	require.NoError(t, err)
	decodeBody(t, resp, &out)
	assert.Equal(t, 0, out.Count)
	assert.NotNil(t, out.Results)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/navigation/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, "ok", out["status"])
}

// ----- renderer websocket -----

func TestRendererWebSocketReceivesStateOnConnectAndMutation(t *testing.T) {
	srv := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/renderer"
	conn, _, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	readFrame := func() map[string]json.RawMessage {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var frame map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &frame))
		return frame
	}
	frameType := func(frame map[string]json.RawMessage) string {
		var s string
		require.NoError(t, json.Unmarshal(frame["type"], &s))
		return s
	}

	// greeting, then the initial snapshot
	frame := readFrame()
	require.Equal(t, "connected", frameType(frame))
	assert.Contains(t, frame, "renderer_id")

	frame = readFrame()
	require.Equal(t, "state_snapshot", frameType(frame))

	// a mutation over HTTP is pushed to the renderer
	resp := postJSON(t, srv.URL+"/navigation/location", `{"latitude": 40.70, "longitude": -74.00}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	frame = readFrame()
	require.Equal(t, "state_snapshot", frameType(frame))
	var snap ports.NavigationSnapshot
	require.NoError(t, json.Unmarshal(frame["snapshot"], &snap))
	require.NotNil(t, snap.CurrentLocation)
	assert.InDelta(t, 40.70, snap.CurrentLocation.Latitude, 1e-9)
}
