package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/model"
)

// Publisher delivers a verification notification to the live feed.
type Publisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

// RedisPublisher publishes notifications on the shared Redis channel so
// every API instance relays them to its own websocket clients.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: config.CacheKey.NotificationsChannel()}
}

func (p *RedisPublisher) Publish(ctx context.Context, n model.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Discard drops every notification. Used by offline tools.
type Discard struct{}

func (Discard) Publish(context.Context, model.Notification) error { return nil }
