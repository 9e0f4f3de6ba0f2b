package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server, context.CancelFunc) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn)
	}))
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, srv, cancel
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var ready ReadyResponse
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&ready))
	require.Equal(t, EventReady, ready.Event)
	return conn
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	hub, srv, _ := startHub(t)
	a := dial(t, srv)
	b := dial(t, srv)

	n := model.Notification{
		ID:         "n-1",
		Kind:       model.NotificationSuccess,
		SchoolID:   "SCH-004",
		SchoolName: "EP Kacyiru Primary",
		Message:    "EP Kacyiru Primary has been verified!",
	}
	require.NoError(t, hub.Publish(context.Background(), n))

	for _, conn := range []*websocket.Conn{a, b} {
		var got NotificationResponse
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, EventNotification, got.Event)
		assert.Equal(t, "SCH-004", got.Notification.SchoolID)
		assert.Equal(t, n.Message, got.Notification.Message)
	}
}

func TestHubAnswersPing(t *testing.T) {
	_, srv, _ := startHub(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(RequestEnvelope{Action: ActionPing}))

	var pong PongResponse
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&pong))
	assert.Equal(t, EventPong, pong.Event)
}

func TestHubRejectsUnknownAction(t *testing.T) {
	_, srv, _ := startHub(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(RequestEnvelope{Action: "subscribe"}))

	var resp ErrorResponse
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, EventError, resp.Event)
	assert.Contains(t, resp.Error, "subscribe")
}

func TestPublishAfterStop(t *testing.T) {
	hub, _, cancel := startHub(t)
	cancel()

	assert.Eventually(t, func() bool {
		// Fill the buffer until the stopped hub reports closure.
		return hub.Publish(context.Background(), model.Notification{}) == ErrHubClosed
	}, 2*time.Second, 5*time.Millisecond)
}
