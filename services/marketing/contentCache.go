// File: services/marketing/contentCache.go
package marketing

import (
	"context"
	"encoding/json"
	"time"

	"detailify/models"

	"github.com/go-redis/redis/v8"
)

const contentCachePrefix = "marketing:content:"

// RedisContentCache keeps recently generated content keyed by prompt hash
// so repeated dashboard clicks don't burn inference quota.
type RedisContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContentCache(client *redis.Client, ttl time.Duration) *RedisContentCache {
	return &RedisContentCache{client: client, ttl: ttl}
}

func (s *RedisContentCache) Get(ctx context.Context, promptHash string) (*models.MarketingContent, error) {
	key := contentCachePrefix + promptHash
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var content models.MarketingContent
	if err := json.Unmarshal([]byte(data), &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *RedisContentCache) Set(ctx context.Context, promptHash string, content *models.MarketingContent) error {
	key := contentCachePrefix + promptHash
	b, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContentCache) Clear(ctx context.Context, promptHash string) error {
	key := contentCachePrefix + promptHash
	return s.client.Del(ctx, key).Err()
}
