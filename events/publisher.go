package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Publisher sends events to the message bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher publishes events to Redis pub/sub, one channel per event type
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, event.Type, payload).Err()
}
