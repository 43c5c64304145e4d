package cache

import (
	"context"
	"time"

	"github.com/verebtamas/munkaido-hub/config"
	"github.com/verebtamas/munkaido-hub/storage/redis"
)

const tokenPrefix = "token"

// SetRefreshToken stores the refresh token under
// mido:token:refresh:{user_id} with the configured TTL.
func SetRefreshToken(ctx context.Context, userID, refreshToken string) error {
	key := redis.Key(tokenPrefix, "refresh", userID)
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, refreshToken, ttl).Err()
}

func GetRefreshToken(ctx context.Context, userID string) (string, error) {
	key := redis.Key(tokenPrefix, "refresh", userID)
	return redis.Client().Get(ctx, key).Result()
}

// DeleteRefreshToken drops the stored token on logout.
func DeleteRefreshToken(ctx context.Context, userID string) error {
	key := redis.Key(tokenPrefix, "refresh", userID)
	return redis.Client().Del(ctx, key).Err()
}

// ValidateRefreshTokenExists checks the presented token against the
// stored one. A rotated or logged-out token no longer matches.
func ValidateRefreshTokenExists(ctx context.Context, userID, refreshToken string) bool {
	storedToken, err := GetRefreshToken(ctx, userID)
	if err != nil {
		return false
	}
	return storedToken == refreshToken
}
