package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/config"
	"github.com/verebtamas/munkaido-hub/internal/cache"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/repository"
	"github.com/verebtamas/munkaido-hub/internal/summary"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
)

var (
	statsService *StatsService
	statsOnce    sync.Once
)

func Stats() *StatsService {
	statsOnce.Do(func() {
		statsService = &StatsService{}
	})
	return statsService
}

type StatsService struct{}

// Trailing returns per-month aggregates over the configured trailing
// window (six calendar months by default), cache-aside.
func (s *StatsService) Trailing(ctx context.Context, publicID string) (*dto.StatsResponse, error) {
	user, err := Auth().lookupUser(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if cached, err := cache.GetStats(ctx, user.PublicID); err != nil {
		logger.Logger.Warn("Stats cache read failed",
			zap.Int64("user_id", user.PublicID),
			zap.Error(err),
		)
	} else if cached != nil {
		return cached, nil
	}

	// Window starts on the first day of the oldest included month.
	now := time.Now()
	months := config.Cfg.StatsWindowMonths
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	logs, err := repository.WorkLogs().ListByUserAndRange(ctx, user.ID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}

	resp := summary.BuildStats(logs)

	if err := cache.SetStats(ctx, user.PublicID, &resp); err != nil {
		logger.Logger.Warn("Stats cache write failed",
			zap.Int64("user_id", user.PublicID),
			zap.Error(err),
		)
	}

	return &resp, nil
}
