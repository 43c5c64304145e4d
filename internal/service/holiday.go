package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/repository"
)

var (
	holidayService *HolidayService
	holidayOnce    sync.Once
)

func Holiday() *HolidayService {
	holidayOnce.Do(func() {
		holidayService = &HolidayService{}
	})
	return holidayService
}

type HolidayService struct{}

// ListYear returns the holiday reference rows of one calendar year.
func (s *HolidayService) ListYear(ctx context.Context, year int) ([]dto.HolidayItem, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := repository.Holidays().ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	items := make([]dto.HolidayItem, 0, len(holidays))
	for _, h := range holidays {
		items = append(items, dto.HolidayItem{
			Date: h.DateString(),
			Name: h.Name,
		})
	}

	return items, nil
}
