package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/redis/go-redis/v9"
)

// PushQueue carries committed notifications to the push dispatcher.
type PushQueue struct {
	client *redis.Client
	key    string
}

func NewPushQueue(client *redis.Client, key string) *PushQueue {
	return &PushQueue{client: client, key: key}
}

func (q *PushQueue) Enqueue(ctx context.Context, payload domain.PushPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *PushQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.PushPayload, error) {
	var p domain.PushPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
