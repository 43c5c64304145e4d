package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/storage/redis"
)

// Derived views are cheap to rebuild, so the TTLs are short. Writes
// invalidate eagerly through the worker as well.
const (
	summaryPrefix = "summary:monthly"
	statsPrefix   = "summary:stats"

	summaryTTL = 10 * time.Minute
	statsTTL   = 30 * time.Minute
)

// GetMonthlySummary returns the cached summary, or (nil, nil) on miss.
func GetMonthlySummary(ctx context.Context, userID int64, monthKey string) (*dto.MonthlySummaryResponse, error) {
	key := redis.Key(summaryPrefix, fmt.Sprintf("%d", userID), monthKey)
	raw, err := redis.Client().Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var resp dto.MonthlySummaryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &resp, nil
}

func SetMonthlySummary(ctx context.Context, userID int64, monthKey string, resp *dto.MonthlySummaryResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	key := redis.Key(summaryPrefix, fmt.Sprintf("%d", userID), monthKey)
	return redis.Client().Set(ctx, key, raw, summaryTTL).Err()
}

// GetStats returns the cached statistics, or (nil, nil) on miss.
func GetStats(ctx context.Context, userID int64) (*dto.StatsResponse, error) {
	key := redis.Key(statsPrefix, fmt.Sprintf("%d", userID))
	raw, err := redis.Client().Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var resp dto.StatsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cached stats: %w", err)
	}
	return &resp, nil
}

func SetStats(ctx context.Context, userID int64, resp *dto.StatsResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	key := redis.Key(statsPrefix, fmt.Sprintf("%d", userID))
	return redis.Client().Set(ctx, key, raw, statsTTL).Err()
}

// InvalidateDerived drops the cached views touched by a work log
// change: the summary of the affected month plus the stats rollup.
func InvalidateDerived(ctx context.Context, userID int64, monthKey string) error {
	keys := []string{
		redis.Key(summaryPrefix, fmt.Sprintf("%d", userID), monthKey),
		redis.Key(statsPrefix, fmt.Sprintf("%d", userID)),
	}

	if err := redis.Client().Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate derived caches: %w", err)
	}
	return nil
}
