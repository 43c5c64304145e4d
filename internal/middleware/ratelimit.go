package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/config"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/pkg/response"
	"github.com/verebtamas/munkaido-hub/storage/redis"
)

type RateLimitConfig struct {
	// Window length in seconds
	Window int
	// Max requests inside one window
	MaxRequests int
	KeyPrefix   string
	ByUserID    bool
	ByIP        bool
	// How long an offender stays blocked, in seconds
	BlockDuration int
}

// AuthRateLimitConfig throttles credential guessing per IP.
var AuthRateLimitConfig = RateLimitConfig{
	Window:        60,
	MaxRequests:   5,
	KeyPrefix:     "auth:rate",
	ByUserID:      false,
	ByIP:          true,
	BlockDuration: 900,
}

type RateLimiter struct {
	config RateLimitConfig
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{config: config}
}

func (rl *RateLimiter) getKey(ctx context.Context, c *app.RequestContext) string {
	var identifier string

	if rl.config.ByUserID {
		if userID, exists := GetUserID(ctx, c); exists {
			identifier = fmt.Sprintf("user:%s", userID)
		}
	}

	if identifier == "" && rl.config.ByIP {
		identifier = fmt.Sprintf("ip:%s", c.ClientIP())
	}

	return redis.Key(rl.config.KeyPrefix, identifier)
}

// Allow implements a sliding window over a Redis sorted set.
func (rl *RateLimiter) Allow(ctx context.Context, c *app.RequestContext) (bool, int, error) {
	key := rl.getKey(ctx, c)
	now := time.Now()
	windowStart := now.Add(-time.Duration(rl.config.Window) * time.Second)

	client := redis.Client()
	pipe := client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	pipe.ZAdd(ctx, key, redislib.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	zcardCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, time.Duration(rl.config.Window+10)*time.Second)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcardCmd.Val())
	allowed := count <= rl.config.MaxRequests

	return allowed, count, nil
}

func (rl *RateLimiter) Block(ctx context.Context, c *app.RequestContext) error {
	key := redis.Key(rl.config.KeyPrefix+":block", rl.getKey(ctx, c))
	return redis.Client().Set(ctx, key, "1", time.Duration(rl.config.BlockDuration)*time.Second).Err()
}

func (rl *RateLimiter) IsBlocked(ctx context.Context, c *app.RequestContext) (bool, error) {
	key := redis.Key(rl.config.KeyPrefix+":block", rl.getKey(ctx, c))
	result, err := redis.Client().Exists(ctx, key).Result()
	return result > 0, err
}

func RateLimitMiddleware(config RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(config)

	return func(ctx context.Context, c *app.RequestContext) {
		blocked, err := limiter.IsBlocked(ctx, c)
		if err != nil {
			logger.Logger.Error("Failed to check block status", zap.Error(err))
			c.AbortWithStatus(consts.StatusInternalServerError)
			return
		}

		if blocked {
			c.Abort()
			response.Error(ctx, c, errors.TooManyRequests)
			return
		}

		allowed, count, err := limiter.Allow(ctx, c)
		if err != nil {
			logger.Logger.Error("Failed to check rate limit", zap.Error(err))
			c.AbortWithStatus(consts.StatusInternalServerError)
			return
		}

		c.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(config.MaxRequests-count))
		c.Response.Header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Duration(config.Window)*time.Second).Unix(), 10))

		if !allowed {
			if err := limiter.Block(ctx, c); err != nil {
				logger.Logger.Error("Failed to block client", zap.Error(err))
			}

			c.Abort()
			response.Error(ctx, c, errors.TooManyRequests)
			return
		}

		c.Next(ctx)
	}
}

// GeneralRateLimitMiddleware limits all authenticated routes. A no-op
// when rate limiting is disabled in config.
func GeneralRateLimitMiddleware() app.HandlerFunc {
	if !config.Cfg.RateLimitEnabled {
		return func(ctx context.Context, c *app.RequestContext) {
			c.Next(ctx)
		}
	}

	return RateLimitMiddleware(RateLimitConfig{
		Window:        60,
		MaxRequests:   config.Cfg.RateLimitRPS,
		KeyPrefix:     "rate:limit",
		ByUserID:      true,
		ByIP:          true,
		BlockDuration: 300,
	})
}

// AuthRateLimitMiddleware limits login and register attempts.
func AuthRateLimitMiddleware() app.HandlerFunc {
	if !config.Cfg.RateLimitEnabled {
		return func(ctx context.Context, c *app.RequestContext) {
			c.Next(ctx)
		}
	}

	return RateLimitMiddleware(AuthRateLimitConfig)
}
