package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKey = "suggestions"
	cacheTTL = 15 * time.Minute
)

// Cache keeps the last generated suggestion list in redis for a short
// while. Generation walks a month of history, no need to redo it on
// every app open.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the cached suggestions, or (nil, false) on a miss.
func (c *Cache) Get(ctx context.Context) ([]Suggestion, bool) {
	val, err := c.client.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, false
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(val), &suggestions); err != nil {
		return nil, false
	}
	return suggestions, true
}

func (c *Cache) Set(ctx context.Context, suggestions []Suggestion) error {
	bytes, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey, bytes, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache suggestions: %w", err)
	}
	return nil
}

// Invalidate drops the cached list, used when new data is logged and
// stale advice would be misleading.
func (c *Cache) Invalidate(ctx context.Context) error {
	err := c.client.Del(ctx, cacheKey).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate suggestions cache: %w", err)
	}
	return nil
}
