package notify

import (
	"context"
	"encoding/json"
	"time"

	"chefbook/internal/pkg/config"
	"chefbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Event is the realtime payload pushed alongside the persisted
// notification row.
type Event struct {
	UserID  uuid.UUID       `json:"user_id"`
	Type    string          `json:"type"`
	Title   string          `json:"title"`
	Body    string          `json:"body,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}

type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(cfg config.RedisConfig) (*Publisher, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return &Publisher{client: client, channel: cfg.Channel}, cleanup, nil
}

// Publish is fire and forget from the caller's perspective: the durable
// notification row has already been committed, so a failed publish only
// costs realtime delivery.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification event")
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return errs.Wrap(err, "failed to publish notification event")
	}
	return nil
}
