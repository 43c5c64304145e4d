package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/storage/database"
	"github.com/verebtamas/munkaido-hub/storage/mq"
	"github.com/verebtamas/munkaido-hub/storage/redis"
)

// Close tears the connections down in MQ, Redis, database order: stop
// taking messages first, flush caches, let the database finish last.
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Logger.Info("Closing storage connections...")

	if err := mq.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close message queue", zap.Error(err))
	}

	if err := redis.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close Redis connection", zap.Error(err))
	}

	if err := database.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close database connection", zap.Error(err))
	}

	logger.Logger.Info("All storage connections closed")
}
