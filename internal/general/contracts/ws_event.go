package contracts

import "navsim/internal/ports"

// WSStateSnapshot mirrors "state_snapshot" events pushed to renderers after
// every session mutation and on connect.
type WSStateSnapshot struct {
	Type     string                   `json:"type"` // "state_snapshot"
	Snapshot ports.NavigationSnapshot `json:"snapshot"`
	Envelope
}

// WSNotification mirrors "notification" events: advisory messages the UI
// surfaces as toasts.
type WSNotification struct {
	Type         string             `json:"type"` // "notification"
	Notification ports.Notification `json:"notification"`
	Envelope
}

// WSConnected is the first frame a renderer receives after the upgrade.
type WSConnected struct {
	Type       string `json:"type"` // "connected"
	RendererID string `json:"renderer_id"`
	Envelope
}
