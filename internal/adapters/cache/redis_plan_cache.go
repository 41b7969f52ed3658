package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const planKeyPrefix = "plan:"

// RedisPlanCache stores solved plans in Redis as JSON token arrays.
//
// Entries expire after a day; the catalog is static, so a solved plan stays
// valid for the life of the encoding, and the TTL only bounds memory use.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(addr string) *RedisPlanCache {
	return &RedisPlanCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    24 * time.Hour,
	}
}

// Ping verifies connectivity so a bad REDIS_ADDR fails at startup, not on
// the first planning request.
func (c *RedisPlanCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("plan cache: ping redis: %w", err)
	}
	return nil
}

func (c *RedisPlanCache) Close() error {
	return c.client.Close()
}

// GetPlan fetches a cached plan. A missing key is a miss, not an error.
func (c *RedisPlanCache) GetPlan(ctx context.Context, key string) ([]string, bool, error) {
	if key == "" {
		return nil, false, errors.New("get plan cache: key must be non-empty")
	}

	val, err := c.client.Get(ctx, planKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: redis get %q: %w", key, err)
	}

	var steps []string
	if err := json.Unmarshal([]byte(val), &steps); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode cached plan %q: %w", key, err)
	}

	return steps, true, nil
}

// PutPlan stores a plan under key with the cache TTL.
func (c *RedisPlanCache) PutPlan(ctx context.Context, key string, steps []string) error {
	if key == "" {
		return errors.New("put plan cache: key must be non-empty")
	}

	payload, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("put plan cache: encode plan %q: %w", key, err)
	}

	if err := c.client.Set(ctx, planKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("put plan cache: redis set %q: %w", key, err)
	}

	return nil
}
