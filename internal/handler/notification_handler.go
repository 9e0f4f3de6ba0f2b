package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	ws "github.com/rwedu/schoolverify-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// NotificationHandler upgrades dashboard connections onto the notification hub.
type NotificationHandler struct {
	hub      *ws.Hub
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(hub *ws.Hub, log zerolog.Logger, allowedOrigins []string) *NotificationHandler {
	return &NotificationHandler{
		hub:      hub,
		log:      log.With().Str("component", "notification_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// Stream godoc
// WS /ws/v1/notifications
// Pushes approve/reject notifications to every connected dashboard.
func (h *NotificationHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	h.log.Debug().Str("remote", c.ClientIP()).Msg("Notification client attached")
	h.hub.Serve(conn)
	h.log.Debug().Str("remote", c.ClientIP()).Msg("Notification client detached")
}
