package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roadassist/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RosterCache keeps the eligible-mechanic snapshot so the selector does not
// hit Postgres on every request. A miss returns (nil, nil) and the caller
// falls back to the registry.
type RosterCache struct {
	client *goredis.Client
	key    string
}

func NewRosterCache(r *Redis) *RosterCache {
	return &RosterCache{
		client: r.Client,
		key:    "mechanics:eligible",
	}
}

func (c *RosterCache) GetEligible(ctx context.Context) ([]*domain.Mechanic, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var mechanics []*domain.Mechanic
	if err := json.Unmarshal(data, &mechanics); err != nil {
		return nil, err
	}

	return mechanics, nil
}

func (c *RosterCache) SetEligible(ctx context.Context, mechanics []*domain.Mechanic, ttl time.Duration) error {
	b, err := json.Marshal(mechanics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
