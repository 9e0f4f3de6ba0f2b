package websocket

import "github.com/rwedu/schoolverify-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is the only client message shape; the feed is read-only.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventReady        Event = "ready"
	EventNotification Event = "notification"
	EventPong         Event = "pong"
	EventError        Event = "error"
)

type ReadyResponse struct {
	Event Event `json:"event"`
}

type NotificationResponse struct {
	Event        Event              `json:"event"`
	Notification model.Notification `json:"notification"`
}

type PongResponse struct {
	Event Event `json:"event"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
