package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"roadassist/internal/api"
	"roadassist/internal/config"
	"roadassist/internal/redis"
	"roadassist/internal/service"
	"roadassist/internal/storage/postgres"
	"roadassist/internal/workers"
	"roadassist/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	PushQ      *redis.PushQueue
	PushSender *workers.PushSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	rosterCache := redis.NewRosterCache(redisClient)
	pushQueue := redis.NewPushQueue(redisClient.Client, "notifications:push")

	requestSvc := service.NewRequestService(
		storage.Requests(),
		storage.Mechanics(),
		rosterCache,
		pushQueue,
		logger,
		cfg.Matching.RosterCacheTTL,
	)
	registrySvc := service.NewMechanicRegistryService(
		storage.Mechanics(),
		rosterCache,
		logger,
		cfg.Matching.DefaultRadiusKm,
		cfg.Matching.RosterCacheTTL,
	)
	notificationSvc := service.NewNotificationService(storage.Notifications())
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(requestSvc, registrySvc, notificationSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv, storage.Pool)
	pushSender := workers.NewPushSender(logger, cfg.Push, pushQueue)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		PushQ:      pushQueue,
		PushSender: pushSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
