package main

// @title Pasajes Service API
// @version 1.0.0
// @description Бэкенд продажи билетов: справочные данные, список, продажа и удаление билетов, CSV-выгрузка.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/pasajes-microservice/docs"
	"github.com/pasajes-microservice/internal/config"
	httpDelivery "github.com/pasajes-microservice/internal/delivery/http"
	"github.com/pasajes-microservice/internal/delivery/http/handler"
	"github.com/pasajes-microservice/internal/domain/repository"
	"github.com/pasajes-microservice/internal/pkg/logger"
	"github.com/pasajes-microservice/internal/repository/cache"
	"github.com/pasajes-microservice/internal/repository/postgres"
	redisRepo "github.com/pasajes-microservice/internal/repository/redis"
	"github.com/pasajes-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Pasajes Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("events_enabled", cfg.Events.Enabled),
	)

	// 3. PostgreSQL pool; connections are acquired per request
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize PostgreSQL pool", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		// каждый запрос сам сообщит о недоступности базы
		log.Warn("PostgreSQL is not reachable yet", zap.Error(err))
	} else {
		log.Info("PostgreSQL connected")
	}
	cancel()

	// 4. Optional Redis: metadata cache and ticket events
	var (
		cacheRepo   repository.CacheRepository
		publisher   repository.EventPublisher
		cacheHealth httpDelivery.HealthChecker
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg, log)
		if err != nil {
			log.Warn("Redis unavailable, cache and events disabled", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()

			cacheRepo = cache.NewCacheRepository(redisClient)
			cacheHealth = redisClient
			if cfg.Events.Enabled {
				streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
				publisher = redisRepo.NewTicketEventPublisher(streamRepo, cfg.Events.Stream)
			}
		}
	}

	// 5. Initialize Repositories
	referenceRepo := postgres.NewReferenceRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	metadataUC := usecase.NewMetadataUseCase(db, referenceRepo, cacheRepo, log, cfg.Cache.MetadataCacheTTL)
	ticketUC := usecase.NewTicketUseCase(db, ticketRepo, referenceRepo, publisher, log)
	reportUC := usecase.NewReportUseCase(db, reportRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		db,
		cacheHealth,
		handler.NewMetadataHandler(metadataUC, log),
		handler.NewTicketHandler(ticketUC, log),
		handler.NewReportHandler(reportUC, log),
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
