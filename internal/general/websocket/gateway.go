package websocket

import (
	"net/http"
	"sync"
	"time"

	"navsim/internal/general/contracts"
	"navsim/internal/general/logger"
	"navsim/internal/ports"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	wsWriteTimeout   = 5 * time.Second
	wsCloseAckWindow = 2 * time.Second
	ctrlTimeout      = 5 * time.Second
	wsReadDeadline   = 90 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// renderers are same-origin browser clients or local tools
	CheckOrigin: func(*http.Request) bool { return true },
}

// RendererGateway fans session state out to connected rendering backends.
// It implements ports.Observer: every snapshot and notification the session
// produces is broadcast to all renderers. Renderers are passive consumers;
// the session never depends on how many of them (including zero) are
// connected.
type RendererGateway struct {
	logger       *logger.Logger
	source       ports.SnapshotSource
	pingInterval time.Duration
	writeLocks   sync.Map // *websocket.Conn -> *sync.Mutex
	renderers    sync.Map // rendererID(string) -> *websocket.Conn
}

// NewRendererGateway creates a gateway that serves initial state from the
// given source on connect.
func NewRendererGateway(log *logger.Logger, source ports.SnapshotSource, pingInterval time.Duration) *RendererGateway {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &RendererGateway{logger: log, source: source, pingInterval: pingInterval}
}

// ConnectRenderer handles GET /ws/renderer: upgrades the connection,
// registers the renderer, pushes the current snapshot, and then holds the
// socket open until the client goes away.
func (g *RendererGateway) ConnectRenderer(w http.ResponseWriter, r *http.Request) {
	// 1) Upgrade HTTP -> WS
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error(r.Context(), "websocket_upgrade_failed", "Failed to upgrade to WebSocket", err, nil)
		return
	}
	// Teardown order (LIFO on return): forget the write lock, close last.
	defer conn.Close()
	defer g.writeLocks.Delete(conn)

	conn.SetReadLimit(1 << 20) // 1 MiB

	rendererID := uuid.NewString()

	// 2) Greet and ship the current state so the renderer can draw its first
	// frame without waiting for a mutation.
	if err := g.writeJSON(conn, contracts.WSConnected{
		Type:       contracts.EventConnected,
		RendererID: rendererID,
		Envelope:   g.envelope(),
	}); err != nil {
		g.logger.Error(r.Context(), "ws_greet_failed", "Failed to send connected frame", err, nil)
		return
	}
	if err := g.writeJSON(conn, contracts.WSStateSnapshot{
		Type:     contracts.EventStateSnapshot,
		Snapshot: g.source.Snapshot(),
		Envelope: g.envelope(),
	}); err != nil {
		g.logger.Error(r.Context(), "ws_initial_snapshot_failed", "Failed to send initial snapshot", err, nil)
		return
	}

	g.logger.Info(r.Context(), "ws_connected", "Renderer WebSocket connected",
		map[string]any{"renderer_id": rendererID})

	// 3) Register this renderer for outbound broadcasts; unregister on exit
	g.renderers.Store(rendererID, conn)
	defer func() {
		g.renderers.Delete(rendererID)
		g.logger.Info(r.Context(), "ws_removed", "Renderer WebSocket removed",
			map[string]any{"renderer_id": rendererID})
	}()

	// 4) Keepalive: ping loop with the per-connection writer lock
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(_ string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	ticker := time.NewTicker(g.pingInterval)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			mu := g.lockOf(conn)
			mu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(ctrlTimeout))
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(ctrlTimeout))
			mu.Unlock()
			if err != nil {
				// Close socket to unblock reader; goroutine exits.
				_ = conn.Close()
				g.logger.Error(r.Context(), "ws_ping_failed", "Failed to send ping", err,
					map[string]any{"renderer_id": rendererID})
				return
			}
		}
	}()

	// 5) Read loop: renderers are write-only from our side, so inbound
	// frames are drained purely to detect the close.
	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				g.logger.Error(r.Context(), "ws_unexpected_close", "Renderer connection closed unexpectedly", err,
					map[string]any{"renderer_id": rendererID})
				g.wsWriteClose(conn, websocket.CloseInternalServerErr, "internal error")
			} else {
				g.logger.Info(r.Context(), "ws_connection_closed", "Renderer connection closed normally",
					map[string]any{"renderer_id": rendererID})
				g.wsWriteClose(conn, websocket.CloseNormalClosure, "bye")
			}
			return
		}
	}
}

// OnSnapshot broadcasts a state snapshot to every connected renderer.
func (g *RendererGateway) OnSnapshot(snap ports.NavigationSnapshot) {
	g.broadcast(contracts.WSStateSnapshot{
		Type:     contracts.EventStateSnapshot,
		Snapshot: snap,
		Envelope: g.envelope(),
	})
}

// OnNotification broadcasts an advisory notification to every renderer.
func (g *RendererGateway) OnNotification(n ports.Notification) {
	g.broadcast(contracts.WSNotification{
		Type:         contracts.EventNotification,
		Notification: n,
		Envelope:     g.envelope(),
	})
}

// ConnectedRenderers returns the ids of all connected renderers (for
// debugging/admin tools).
func (g *RendererGateway) ConnectedRenderers() []string {
	var ids []string
	g.renderers.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	return ids
}

func (g *RendererGateway) envelope() contracts.Envelope {
	return contracts.Envelope{Producer: "navigation-service", SentAt: time.Now().UTC()}
}
