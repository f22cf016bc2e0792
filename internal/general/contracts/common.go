package contracts

import "time"

// Envelope adds cross-cutting headers all outbound messages may carry.
type Envelope struct {
	CorrelationID string    `json:"correlation_id,omitempty"` // Correlation for tracing
	Producer      string    `json:"producer,omitempty"`       // Producer service name, e.g. "navigation-service"
	SentAt        time.Time `json:"sent_at,omitempty"`        // ISO-8601 send time (UTC)
}

// Event type tags used on the renderer WebSocket.
const (
	EventStateSnapshot = "state_snapshot"
	EventNotification  = "notification"
	EventConnected     = "connected"
)
