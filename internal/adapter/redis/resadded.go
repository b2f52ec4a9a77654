package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// ResAddedMessage is the wire form of domain.ResAdded.
type ResAddedMessage struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Publisher sends ResAdded events to a pub/sub channel.
type Publisher struct {
	rdb     redis.UniversalClient
	channel string
}

// NewPublisher creates a publisher on channel.
func NewPublisher(rdb redis.UniversalClient, channel string) *Publisher {
	return &Publisher{rdb: rdb, channel: channel}
}

// PublishResAdded publishes {"id","topic","count"} for a committed res.
func (p *Publisher) PublishResAdded(ctx context.Context, ev domain.ResAdded) error {
	payload, err := json.Marshal(ResAddedMessage{
		ID:    ev.Res.ID,
		Topic: ev.Res.TopicID,
		Count: ev.Count,
	})
	if err != nil {
		return fmt.Errorf("marshal res added: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish res added: %w", err)
	}
	return nil
}

// Subscriber receives ResAdded events from a pub/sub channel.
type Subscriber struct {
	rdb     redis.UniversalClient
	channel string
	log     *slog.Logger
}

// NewSubscriber creates a subscriber on channel.
func NewSubscriber(rdb redis.UniversalClient, channel string, log *slog.Logger) *Subscriber {
	return &Subscriber{rdb: rdb, channel: channel, log: log.With("component", "res_added_subscriber")}
}

// SubscribeResAdded subscribes and returns a channel that yields messages
// until ctx is cancelled. The subscription is confirmed before returning,
// so nothing published after the call is missed.
// Malformed payloads are logged and skipped.
func (s *Subscriber) SubscribeResAdded(ctx context.Context) (<-chan ResAddedMessage, error) {
	pubsub := s.rdb.Subscribe(ctx, s.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", s.channel, err)
	}

	out := make(chan ResAddedMessage)
	go func() {
		defer close(out)
		defer pubsub.Close()

		in := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				var m ResAddedMessage
				if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
					s.log.WarnContext(ctx, "drop malformed res added message",
						slog.String("channel", msg.Channel),
						slog.String("error", err.Error()),
					)
					continue
				}
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
