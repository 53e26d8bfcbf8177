package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	"github.com/pasajes-microservice/internal/usecase/dto"
)

// MetadataUseCase - use case справочных данных (маршруты, единицы, типы билетов)
type MetadataUseCase struct {
	gateway       repository.Gateway
	referenceRepo repository.ReferenceRepository
	cacheRepo     repository.CacheRepository // nil when Redis is disabled
	logger        *zap.Logger
	cacheTTL      time.Duration
}

// NewMetadataUseCase - создание нового MetadataUseCase; cacheRepo may be nil
func NewMetadataUseCase(
	gateway repository.Gateway,
	referenceRepo repository.ReferenceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MetadataUseCase {
	return &MetadataUseCase{
		gateway:       gateway,
		referenceRepo: referenceRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

// GetMetadata returns all routes, vehicles and fare types read on a single connection
func (uc *MetadataUseCase) GetMetadata(ctx context.Context) (*dto.MetadataResponse, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetMetadata(ctx)
		if err != nil {
			uc.logger.Warn("Failed to read metadata from cache", zap.Error(err))
		} else if cached != nil {
			uc.logger.Debug("Metadata cache hit")
			return dto.ConvertMetadata(cached), nil
		}
	}

	metadata := &domain.Metadata{}
	err := uc.gateway.WithinConnection(ctx, func(ctx context.Context) error {
		var err error
		if metadata.Routes, err = uc.referenceRepo.ListRoutes(ctx); err != nil {
			return err
		}
		if metadata.Vehicles, err = uc.referenceRepo.ListVehicles(ctx); err != nil {
			return err
		}
		metadata.FareTypes, err = uc.referenceRepo.ListFareTypes(ctx)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to load metadata", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetMetadata(ctx, metadata, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache metadata", zap.Error(err))
		}
	}

	return dto.ConvertMetadata(metadata), nil
}
