package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MetadataKey - cache key of the reference-data aggregate
const MetadataKey = "metadata:current"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetMetadata получает справочные данные из кеша
func (r *cacheRepository) GetMetadata(ctx context.Context) (*domain.Metadata, error) {
	data, err := r.Get(ctx, MetadataKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var metadata domain.Metadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		r.logger.Error("Failed to unmarshal metadata from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}

	return &metadata, nil
}

// SetMetadata сохраняет справочные данные в кеше
func (r *cacheRepository) SetMetadata(ctx context.Context, metadata *domain.Metadata, ttl time.Duration) error {
	data, err := json.Marshal(metadata)
	if err != nil {
		r.logger.Error("Failed to marshal metadata", zap.Error(err))
		return fmt.Errorf("marshal metadata: %w", err)
	}

	return r.Set(ctx, MetadataKey, data, ttl)
}
