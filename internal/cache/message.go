package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/verebtamas/munkaido-hub/storage/redis"
)

const (
	messageProcessedPrefix = "message:processed"

	processedTTL = 48 * time.Hour
)

// TryMarkMessageProcessing atomically claims a message ID with SETNX.
// Returns true on first sight, false when a duplicate delivery arrives
// while the original is processing or already done.
func TryMarkMessageProcessing(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	key := redis.Key(messageProcessedPrefix, messageID)
	if ttl <= 0 {
		ttl = processedTTL
	}

	result, err := redis.Client().SetNX(ctx, key, "processing", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark message as processing: %w", err)
	}
	return result, nil
}

// UnmarkMessageProcessing releases the claim so a failed message can
// be retried.
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key(messageProcessedPrefix, messageID)
	return redis.Client().Del(ctx, key).Err()
}

// MarkMessageProcessed settles the claim after successful handling.
func MarkMessageProcessed(ctx context.Context, messageID string, ttl time.Duration) error {
	key := redis.Key(messageProcessedPrefix, messageID)
	if ttl <= 0 {
		ttl = processedTTL
	}
	return redis.Client().Set(ctx, key, "completed", ttl).Err()
}
