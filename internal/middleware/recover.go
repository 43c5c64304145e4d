package middleware

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/config"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

type RecoverConfig struct {
	EnableStackTrace          bool
	StackTraceLevel           string // full, simple, none
	ExposeDetailsInProduction bool
	LogRequestDetails         bool
	IsProduction              bool
}

func NewRecoverConfig() RecoverConfig {
	return RecoverConfig{
		EnableStackTrace:          true,
		StackTraceLevel:           "simple",
		ExposeDetailsInProduction: false,
		LogRequestDetails:         true,
		IsProduction:              config.Cfg.IsProduction(),
	}
}

var DefaultRecoverConfig = NewRecoverConfig()

func RecoverMiddleware() app.HandlerFunc {
	return RecoverMiddlewareWithConfig(DefaultRecoverConfig)
}

func RecoverMiddlewareWithConfig(cfg RecoverConfig) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err, cfg)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}, cfg RecoverConfig) {
	var stack []byte
	if cfg.EnableStackTrace {
		stack = getStackTrace(cfg.StackTraceLevel)
	}

	logPanic(ctx, c, err, stack, cfg)
	writeErrorResponse(c, err, stack, cfg)
}

func writeErrorResponse(c *app.RequestContext, err interface{}, stack []byte, cfg RecoverConfig) {
	var errDef errors.Definition
	if cfg.IsProduction && !cfg.ExposeDetailsInProduction {
		errDef = errors.Definition{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "Szerverhiba történt, próbáld újra később",
		}
	} else {
		errDef = errors.Definition{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: fmt.Sprintf("Internal error: %v", err),
		}
	}

	var details map[string]interface{}
	if !cfg.IsProduction || cfg.ExposeDetailsInProduction {
		details = map[string]interface{}{
			"panic":     fmt.Sprintf("%v", err),
			"timestamp": time.Now().Format(time.RFC3339),
		}

		if cfg.EnableStackTrace {
			details["stack"] = string(stack)
		}
	}

	if details != nil {
		response.ErrorWithDetails(context.Background(), c, errDef, details)
	} else {
		response.Error(context.Background(), c, errDef)
	}
}

func getStackTrace(level string) []byte {
	var buf bytes.Buffer

	switch level {
	case "full":
		buf.Write(debug.Stack())
	case "simple":
		buf.WriteString("goroutine panic:\n")
		// Skip the runtime and recover frames.
		for i := 3; ; i++ {
			pc, file, line, ok := runtime.Caller(i)
			if !ok {
				break
			}
			fn := runtime.FuncForPC(pc)
			if fn == nil {
				continue
			}
			buf.WriteString(fmt.Sprintf("  %s:%d\n    %s\n", file, line, fn.Name()))
		}
	}

	return buf.Bytes()
}

func logPanic(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte, cfg RecoverConfig) {
	fields := []zap.Field{
		zap.String("panic", fmt.Sprintf("%v", err)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
		zap.String("user_agent", string(c.UserAgent())),
	}

	if requestID := string(c.GetHeader("X-Request-ID")); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	if userID, exists := GetUserID(ctx, c); exists {
		fields = append(fields, zap.String("user_id", userID))
	}

	if cfg.LogRequestDetails {
		body := c.Request.Body()
		if len(body) > 0 && len(body) < 1024 {
			contentType := string(c.ContentType())
			if !strings.Contains(contentType, "multipart") {
				fields = append(fields, zap.String("body", string(body)))
			}
		}
	}

	if cfg.EnableStackTrace {
		fields = append(fields, zap.ByteString("stack", stack))
	}

	logger.Logger.Error("[PANIC RECOVERED]", fields...)
}
