package summary

import (
	"fmt"
	"time"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/timecalc"
)

// BuildMonthly expands a calendar month into business-day summaries.
// Weekends are skipped, holidays without a log are omitted, weekdays
// without a log get the synthetic default record. Pure function of its
// inputs, safe to recompute on every change notification.
func BuildMonthly(year int, month time.Month, logs []model.WorkLog, holidays []model.Holiday) ([]dto.DaySummary, error) {
	logByDate := make(map[string]*model.WorkLog, len(logs))
	for i := range logs {
		logByDate[logs[i].DateString()] = &logs[i]
	}
	holidayByDate := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayByDate[h.DateString()] = h.Name
	}

	days := make([]dto.DaySummary, 0, timecalc.DaysInMonth(year, month))
	for day := 1; day <= timecalc.DaysInMonth(year, month); day++ {
		if timecalc.IsWeekend(year, month, day) {
			continue
		}
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		holidayName, isHoliday := holidayByDate[date]

		log, ok := logByDate[date]
		if !ok {
			if isHoliday {
				continue
			}
			days = append(days, defaultDay(date))
			continue
		}

		elapsed, err := timecalc.ElapsedMinutes(log.ArrivalTime, log.DepartureTime, log.UnpaidBreakMinutes)
		if err != nil {
			return nil, fmt.Errorf("work log %s: %w", date, err)
		}
		pmHours, pmMinutes := timecalc.SignedDelta(elapsed, timecalc.BaselineMinutes)

		days = append(days, dto.DaySummary{
			Date:             date,
			Arrival:          log.ArrivalTime,
			Departure:        log.DepartureTime,
			UnpaidBreak:      log.UnpaidBreakMinutes,
			WorkedHours:      floorDiv(elapsed, 60),
			WorkedMinutes:    abs(elapsed % 60),
			PlusMinusHours:   pmHours,
			PlusMinusMinutes: pmMinutes,
			PlusMinusLabel:   timecalc.FormatSignedDelta(pmHours, pmMinutes),
			IsHoliday:        isHoliday,
			HolidayName:      holidayName,
		})
	}

	return days, nil
}

// defaultDay is the record substituted for an unlogged weekday:
// 07:00-15:00 with a 20 minute break, 20 minutes short of baseline.
func defaultDay(date string) dto.DaySummary {
	return dto.DaySummary{
		Date:             date,
		Arrival:          timecalc.DefaultArrival,
		Departure:        timecalc.DefaultDeparture,
		UnpaidBreak:      timecalc.DefaultBreakMinutes,
		WorkedHours:      timecalc.DefaultWorkedHours,
		WorkedMinutes:    timecalc.DefaultWorkedMinutes,
		PlusMinusHours:   0,
		PlusMinusMinutes: -timecalc.DefaultBreakMinutes,
		PlusMinusLabel:   timecalc.FormatSignedDelta(0, -timecalc.DefaultBreakMinutes),
	}
}

// BuildMonthTotal reduces the per-day deltas into the month rollup.
// Minutes are added with the sign of the hours component unless the
// hours are zero, in which case the minutes carry their own sign.
func BuildMonthTotal(days []dto.DaySummary) dto.MonthTotal {
	total := 0
	for _, d := range days {
		m := d.PlusMinusMinutes
		if d.PlusMinusHours < 0 {
			m = -m
		}
		total += d.PlusMinusHours*60 + m
	}

	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	return dto.MonthTotal{
		Sign:    sign,
		Hours:   total / 60,
		Minutes: total % 60,
		Label:   fmt.Sprintf("%s%d óra %d perc", sign, total/60, total%60),
	}
}

// floorDiv rounds toward negative infinity, unlike Go's / which
// truncates toward zero. Matters for the negative overnight case.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
