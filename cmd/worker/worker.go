package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/config"
	"github.com/verebtamas/munkaido-hub/internal/i18n"
	"github.com/verebtamas/munkaido-hub/internal/queue"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/pkg/snowflake"
	"github.com/verebtamas/munkaido-hub/storage"
)

func main() {
	config.MustValidate()

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	i18n.Init(config.Cfg.DefaultLocale)

	logger.Logger.Info("Worker starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("environment", config.Cfg.Environment),
	)

	queue.StartAllConsumers(ctx)

	logger.Logger.Info("Worker shutting down gracefully")
}
