package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// broadcast marshals once and writes the payload to every registered
// renderer. A renderer whose write fails is dropped; the session must never
// notice a slow or dead observer.
func (g *RendererGateway) broadcast(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		g.logger.Error(context.Background(), "ws_broadcast_marshal_failed",
			"Failed to marshal broadcast payload", err, nil)
		return
	}

	g.renderers.Range(func(key, value any) bool {
		rendererID := key.(string)
		conn := value.(*websocket.Conn)
		if err := g.wsWriteMessage(conn, websocket.TextMessage, payload); err != nil {
			g.logger.Error(context.Background(), "ws_broadcast_failed",
				"Failed to push to renderer, dropping connection", err,
				map[string]any{"renderer_id": rendererID})
			g.renderers.Delete(rendererID)
			_ = conn.Close()
		}
		return true
	})
}

// wsWriteClose sends a close control frame with the given code and reason.
func (g *RendererGateway) wsWriteClose(conn *websocket.Conn, code int, reason string) {
	mu := g.lockOf(conn)
	mu.Lock()
	defer mu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(wsCloseAckWindow),
	)
	g.writeLocks.Delete(conn)
}

// wsWriteMessage sets a short write deadline and writes a message.
func (g *RendererGateway) wsWriteMessage(conn *websocket.Conn, mt int, payload []byte) error {
	mu := g.lockOf(conn)
	mu.Lock()
	defer mu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteMessage(mt, payload)
}

// writeJSON marshals v and writes a single TextMessage to the given connection.
func (g *RendererGateway) writeJSON(conn *websocket.Conn, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return g.wsWriteMessage(conn, websocket.TextMessage, payload)
}

// lockOf returns the writer mutex for a specific connection.
func (g *RendererGateway) lockOf(conn *websocket.Conn) *sync.Mutex {
	if v, ok := g.writeLocks.Load(conn); ok {
		if mu, ok := v.(*sync.Mutex); ok && mu != nil {
			return mu
		}
	}
	mu := &sync.Mutex{}
	actual, _ := g.writeLocks.LoadOrStore(conn, mu)
	return actual.(*sync.Mutex)
}
