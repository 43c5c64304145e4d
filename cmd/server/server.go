package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	otelapi "go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/config"
	"github.com/verebtamas/munkaido-hub/internal/i18n"
	"github.com/verebtamas/munkaido-hub/internal/middleware"
	"github.com/verebtamas/munkaido-hub/internal/router"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/pkg/otel"
	"github.com/verebtamas/munkaido-hub/pkg/snowflake"
	"github.com/verebtamas/munkaido-hub/pkg/token"
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

	// token before middleware, the auth middleware reuses its generator
	if err := token.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize token package", zap.Error(err))
	}

	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	var h *server.Hertz
	if config.Cfg.TracingEnabled {
		shutdown, err := otel.InitOpenTelemetry(ctx, otel.Config{
			ServiceName:    config.Cfg.ServiceName,
			ServiceVersion: "1.0.0",
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.TracingEndpoint,
			SampleRatio:    config.Cfg.TracingSampler,
		})
		if err != nil {
			logger.Logger.Fatal("Failed to initialize OpenTelemetry", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
			}
		}()

		if err := middleware.InitMetrics(otelapi.Meter("munkaido-server")); err != nil {
			logger.Logger.Fatal("Failed to initialize HTTP metrics", zap.Error(err))
		}

		tracerOpt, tracingMiddleware := middleware.NewServerTracerConfig()
		h = server.Default(server.WithHostPorts(addr), tracerOpt)
		h.Use(tracingMiddleware)
		h.Use(middleware.OpenTelemetryMiddleware())
	} else {
		h = server.Default(server.WithHostPorts(addr))
	}

	router.Register(h)

	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
