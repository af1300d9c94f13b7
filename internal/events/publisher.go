package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sustainhire/internship-intake/internal/models"
)

const DefaultStream = "internship:submitted"

type Publisher interface {
	Publish(ctx context.Context, evt models.SubmissionEvent) error
}

// Nop drops every event. Used when no Redis is configured.
type Nop struct{}

func (Nop) Publish(context.Context, models.SubmissionEvent) error { return nil }

// RedisPublisher appends submission events to a Redis stream.
type RedisPublisher struct {
	rdb    *redis.Client
	stream string
	maxLen int64
}

func NewRedisPublisher(rdb *redis.Client, stream string, maxLen int64) (*RedisPublisher, error) {
	if rdb == nil {
		return nil, errors.New("redis client is nil")
	}
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisPublisher{rdb: rdb, stream: stream, maxLen: maxLen}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, evt models.SubmissionEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"application_id": evt.ApplicationID,
			"email":          evt.Email,
			"submitted_at":   evt.SubmittedAt.UTC().Format(time.RFC3339Nano),
			"payload":        string(payload),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	return p.rdb.XAdd(ctx, args).Err()
}
