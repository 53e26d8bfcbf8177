package repository

import (
	"context"
	"time"

	"github.com/pasajes-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get returns nil, nil on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// GetMetadata returns nil, nil on a miss
	GetMetadata(ctx context.Context) (*domain.Metadata, error)

	SetMetadata(ctx context.Context, metadata *domain.Metadata, ttl time.Duration) error
}
