package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/internal/cache"
	"github.com/verebtamas/munkaido-hub/internal/export"
	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/queue"
	"github.com/verebtamas/munkaido-hub/internal/repository"
	"github.com/verebtamas/munkaido-hub/internal/timecalc"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/utils"
)

var (
	workLogService *WorkLogService
	workLogOnce    sync.Once
)

func WorkLog() *WorkLogService {
	workLogOnce.Do(func() {
		workLogService = &WorkLogService{}
	})
	return workLogService
}

type WorkLogService struct{}

// Upsert writes the entry for one date, overwriting a previous one.
// The departure time is derived from arrival + declared hours, with
// the unpaid break added only when the break is applied.
func (s *WorkLogService) Upsert(ctx context.Context, publicID string, req dto.UpsertWorkLogRequest) (*dto.WorkLogItem, error) {
	if !utils.ValidateDate(req.Date) {
		return nil, errors.InvalidDate
	}
	date, err := time.Parse(model.DateOnly, req.Date)
	if err != nil {
		return nil, errors.InvalidDate
	}

	if !utils.ValidateClock(req.ArrivalTime) {
		return nil, errors.InvalidClock
	}

	// Declared hours come in quarter-hour steps.
	if req.WorkHours <= 0 || req.WorkHours > 24 || math.Mod(req.WorkHours*4, 1) != 0 {
		return nil, errors.ValidationFailed
	}
	if req.UnpaidBreakMinutes < 0 || req.UnpaidBreakMinutes > 480 {
		return nil, errors.ValidationFailed
	}

	departure, err := timecalc.DeriveDeparture(req.ArrivalTime, req.WorkHours, req.UnpaidBreakMinutes, req.UnpaidApplied)
	if err != nil {
		return nil, errors.InvalidClock
	}

	user, err := Auth().lookupUser(ctx, publicID)
	if err != nil {
		return nil, err
	}

	log := &model.WorkLog{
		UserID:             user.ID,
		Date:               date,
		ArrivalTime:        req.ArrivalTime,
		DepartureTime:      departure,
		WorkHours:          req.WorkHours,
		UnpaidBreakMinutes: req.UnpaidBreakMinutes,
		UnpaidApplied:      req.UnpaidApplied,
	}

	if err := repository.WorkLogs().Upsert(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to upsert work log: %w", err)
	}

	monthKey := log.MonthKey()

	// Drop the local caches right away, then fan the change out so
	// every other instance does the same.
	if err := cache.InvalidateDerived(ctx, user.PublicID, monthKey); err != nil {
		logger.Logger.Warn("Failed to invalidate derived caches",
			zap.Int64("user_id", user.PublicID),
			zap.String("month", monthKey),
			zap.Error(err),
		)
	}

	if err := queue.PublishWorkLogChanged(queue.WorkLogChangedMessage{
		UserID:   user.PublicID,
		Date:     req.Date,
		MonthKey: monthKey,
		Action:   queue.ActionUpserted,
	}); err != nil {
		// The write already landed and local caches are clean.
		logger.Logger.Warn("Failed to publish work log change",
			zap.Int64("user_id", user.PublicID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
	}

	return workLogItem(log), nil
}

// List returns the user's entries newest first plus the total count.
func (s *WorkLogService) List(ctx context.Context, publicID string, limit, offset int) ([]dto.WorkLogItem, int64, error) {
	user, err := Auth().lookupUser(ctx, publicID)
	if err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 31
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := repository.WorkLogs().ListByUser(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work logs: %w", err)
	}

	total, err := repository.WorkLogs().CountByUser(ctx, user.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count work logs: %w", err)
	}

	items := make([]dto.WorkLogItem, 0, len(logs))
	for i := range logs {
		items = append(items, *workLogItem(&logs[i]))
	}

	return items, total, nil
}

// Export renders every entry as CSV. An empty log set is refused.
func (s *WorkLogService) Export(ctx context.Context, publicID string) ([]byte, string, error) {
	user, err := Auth().lookupUser(ctx, publicID)
	if err != nil {
		return nil, "", err
	}

	logs, err := repository.WorkLogs().ListAllByUser(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list work logs: %w", err)
	}

	body, err := export.BuildWorkLogCSV(logs)
	if err != nil {
		return nil, "", err
	}

	return body, export.Filename(time.Now()), nil
}

func workLogItem(log *model.WorkLog) *dto.WorkLogItem {
	return &dto.WorkLogItem{
		Date:               log.DateString(),
		ArrivalTime:        log.ArrivalTime,
		DepartureTime:      log.DepartureTime,
		WorkHours:          log.WorkHours,
		UnpaidBreakMinutes: log.UnpaidBreakMinutes,
		UnpaidApplied:      log.UnpaidApplied,
	}
}
