package worker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	got chan model.Notification
}

func (s *captureSink) Publish(_ context.Context, n model.Notification) error {
	s.got <- n
	return nil
}

func TestNotificationRelayForwards(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	sink := &captureSink{got: make(chan model.Notification, 4)}
	relay := NewNotificationRelay(rdb, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay.Start(ctx)
		close(done)
	}()

	channel := config.CacheKey.NotificationsChannel()
	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(channel)[channel] == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Malformed payloads are skipped.
	mr.Publish(channel, "{not json")

	pub := notify.NewRedisPublisher(rdb)
	require.NoError(t, pub.Publish(context.Background(), model.Notification{
		ID:       "n-7",
		Kind:     model.NotificationSuccess,
		SchoolID: "SCH-017",
		Message:  "approved",
	}))

	select {
	case n := <-sink.got:
		assert.Equal(t, "n-7", n.ID)
		assert.Equal(t, "SCH-017", n.SchoolID)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not forward notification")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}
