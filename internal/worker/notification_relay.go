package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/notify"
)

// NotificationRelay forwards notifications published on the Redis channel
// (by any API instance) to this instance's local websocket hub.
type NotificationRelay struct {
	rdb  *redis.Client
	sink notify.Publisher
	log  zerolog.Logger
}

func NewNotificationRelay(rdb *redis.Client, sink notify.Publisher, log zerolog.Logger) *NotificationRelay {
	return &NotificationRelay{
		rdb:  rdb,
		sink: sink,
		log:  log.With().Str("component", "notification_relay").Logger(),
	}
}

// Start blocks until ctx is cancelled.
func (w *NotificationRelay) Start(ctx context.Context) {
	channel := config.CacheKey.NotificationsChannel()
	pubsub := w.rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	w.log.Info().Str("channel", channel).Msg("NotificationRelay started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("NotificationRelay stopped")
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			var n model.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				w.log.Warn().Err(err).Msg("Dropping malformed notification")
				continue
			}
			if err := w.sink.Publish(ctx, n); err != nil {
				if ctx.Err() != nil {
					return
				}
				w.log.Error().Err(err).Str("school_id", n.SchoolID).Msg("Relay notification")
			}
		}
	}
}
