package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"manifest-server/internal/interfaces"
	"manifest-server/internal/models"
)

var _ interfaces.SearchCacheRepository = (*redisSearchCache)(nil)

const searchCacheKeyPrefix = "image_search:"

// redisSearchCache - кэш результатов поиска изображений в Redis.
// Значения сериализуются в JSON, TTL задает вызывающая сторона.
type redisSearchCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisSearchCache создает Redis-кэш результатов поиска.
func NewRedisSearchCache(client *redis.Client, logger *zap.Logger) interfaces.SearchCacheRepository {
	return &redisSearchCache{
		client: client,
		logger: logger.Named("RedisSearchCache"),
	}
}

func (c *redisSearchCache) Get(ctx context.Context, key string) ([]models.ImageCandidate, error) {
	payload, err := c.client.Get(ctx, searchCacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNotFound
		}
		c.logger.Error("Failed to get cached search result", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("failed to get cached search result: %w", err)
	}

	var candidates []models.ImageCandidate
	if err := json.Unmarshal(payload, &candidates); err != nil {
		// Поврежденная запись кэша эквивалентна промаху.
		c.logger.Warn("Corrupted cache entry, treating as miss", zap.Error(err), zap.String("key", key))
		return nil, models.ErrNotFound
	}
	return candidates, nil
}

func (c *redisSearchCache) Set(ctx context.Context, key string, candidates []models.ImageCandidate, ttl time.Duration) error {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}

	if err := c.client.Set(ctx, searchCacheKeyPrefix+key, payload, ttl).Err(); err != nil {
		c.logger.Error("Failed to cache search result", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to cache search result: %w", err)
	}
	return nil
}
