package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/model"
)

// ErrHubClosed is returned by Publish once the hub has stopped.
var ErrHubClosed = errors.New("notification hub closed")

const clientBuffer = 16

// client is one connected dashboard. send is owned and closed by the hub;
// replies carries answers from the read side and is never closed.
type client struct {
	conn    *websocket.Conn
	send    chan []byte
	replies chan []byte
}

// Hub fans verification notifications out to connected dashboards.
// A single goroutine (Run) owns the client set.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan model.Notification
	done       chan struct{}
	log        zerolog.Logger
}

// NewHub creates a Hub. Call Run in a goroutine before serving clients.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan model.Notification, 64),
		done:       make(chan struct{}),
		log:        log.With().Str("component", "notification_hub").Logger(),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.log.Info().Msg("Hub stopped")
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.log.Debug().Int("clients", len(h.clients)).Msg("Client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case n := <-h.broadcast:
			data, err := json.Marshal(NotificationResponse{Event: EventNotification, Notification: n})
			if err != nil {
				h.log.Error().Err(err).Msg("Marshal notification")
				continue
			}
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					// Slow consumer; drop it rather than stall the feed.
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// Publish queues a notification for every connected client.
func (h *Hub) Publish(ctx context.Context, n model.Notification) error {
	select {
	case h.broadcast <- n:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Serve registers an upgraded connection and blocks until it closes.
func (h *Hub) Serve(conn *websocket.Conn) {
	c := &client{
		conn:    conn,
		send:    make(chan []byte, clientBuffer),
		replies: make(chan []byte, clientBuffer),
	}

	// Queued before registration so it is always the first frame.
	ready, _ := json.Marshal(ReadyResponse{Event: EventReady})
	c.send <- ready

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump answers pings and detects disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg RequestEnvelope
		if err := readJSON(c.conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}

		var reply interface{}
		switch msg.Action {
		case ActionPing:
			reply = PongResponse{Event: EventPong}
		default:
			reply = ErrorResponse{Event: EventError, Error: "unknown action: " + string(msg.Action)}
		}
		data, _ := json.Marshal(reply)
		select {
		case c.replies <- data:
		default:
		}
	}
}

// writePump drains the client's queue and keeps the connection alive.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := writeRaw(c.conn, data); err != nil {
				return
			}
		case data := <-c.replies:
			if err := writeRaw(c.conn, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
