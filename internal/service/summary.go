package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/internal/cache"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/repository"
	"github.com/verebtamas/munkaido-hub/internal/summary"
	"github.com/verebtamas/munkaido-hub/internal/timecalc"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/utils"
)

var (
	summaryService *SummaryService
	summaryOnce    sync.Once
)

func Summary() *SummaryService {
	summaryOnce.Do(func() {
		summaryService = &SummaryService{}
	})
	return summaryService
}

type SummaryService struct{}

// Monthly builds the business-day summary for one month, cache-aside.
// The cached copy is dropped whenever one of the month's entries
// changes, so a recompute always reflects the latest write.
func (s *SummaryService) Monthly(ctx context.Context, publicID string, monthKey string) (*dto.MonthlySummaryResponse, error) {
	if !utils.ValidateMonth(monthKey) {
		return nil, errors.InvalidMonth
	}
	monthStart, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return nil, errors.InvalidMonth
	}

	user, err := Auth().lookupUser(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if cached, err := cache.GetMonthlySummary(ctx, user.PublicID, monthKey); err != nil {
		logger.Logger.Warn("Summary cache read failed",
			zap.Int64("user_id", user.PublicID),
			zap.String("month", monthKey),
			zap.Error(err),
		)
	} else if cached != nil {
		return cached, nil
	}

	year, month := monthStart.Year(), monthStart.Month()
	monthEnd := time.Date(year, month, timecalc.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)

	logs, err := repository.WorkLogs().ListByUserAndRange(ctx, user.ID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}

	holidays, err := repository.Holidays().ListByRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	days, err := summary.BuildMonthly(year, month, logs, holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	resp := &dto.MonthlySummaryResponse{
		Month: monthKey,
		Days:  days,
		Total: summary.BuildMonthTotal(days),
	}

	if err := cache.SetMonthlySummary(ctx, user.PublicID, monthKey, resp); err != nil {
		logger.Logger.Warn("Summary cache write failed",
			zap.Int64("user_id", user.PublicID),
			zap.String("month", monthKey),
			zap.Error(err),
		)
	}

	return resp, nil
}
