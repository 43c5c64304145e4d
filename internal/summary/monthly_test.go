package summary

import (
	"testing"
	"time"

	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
)

func date(s string) time.Time {
	t, err := time.Parse(model.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func workLog(day string, arrival, departure string, breakMin int, hours float64) model.WorkLog {
	return model.WorkLog{
		Date:               date(day),
		ArrivalTime:        arrival,
		DepartureTime:      departure,
		UnpaidBreakMinutes: breakMin,
		WorkHours:          hours,
	}
}

func findDay(t *testing.T, days []dto.DaySummary, date string) dto.DaySummary {
	t.Helper()
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("day %s not in summary", date)
	return dto.DaySummary{}
}

// June 2025: starts on a Sunday, 21 weekdays, Whit Monday on the 9th.
func TestBuildMonthlySkipsWeekends(t *testing.T) {
	days, err := BuildMonthly(2025, time.June, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 21 {
		t.Fatalf("expected 21 business days, got %d", len(days))
	}
	for _, d := range days {
		wd := date(d.Date).Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend day %s present in summary", d.Date)
		}
	}
}

func TestBuildMonthlyWeekendLogSkipped(t *testing.T) {
	// 2025-06-07 is a Saturday; a logged entry must not pull it in.
	logs := []model.WorkLog{workLog("2025-06-07", "09:00", "13:00", 0, 4)}

	days, err := BuildMonthly(2025, time.June, logs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 21 {
		t.Fatalf("expected 21 business days, got %d", len(days))
	}
	for _, d := range days {
		if d.Date == "2025-06-07" {
			t.Error("logged Saturday should be skipped")
		}
	}
}

func TestBuildMonthlyDefaultFill(t *testing.T) {
	days, err := BuildMonthly(2025, time.June, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := findDay(t, days, "2025-06-02")
	if d.Arrival != "07:00" || d.Departure != "15:00" || d.UnpaidBreak != 20 {
		t.Errorf("unexpected default record: %+v", d)
	}
	if d.WorkedHours != 7 || d.WorkedMinutes != 40 {
		t.Errorf("default worked time = %d:%d, want 7:40", d.WorkedHours, d.WorkedMinutes)
	}
	if d.PlusMinusHours != 0 || d.PlusMinusMinutes != -20 {
		t.Errorf("default delta = (%d, %d), want (0, -20)", d.PlusMinusHours, d.PlusMinusMinutes)
	}
	if d.PlusMinusLabel != "-0 óra 20 perc" {
		t.Errorf("default label = %q, want %q", d.PlusMinusLabel, "-0 óra 20 perc")
	}
}

func TestBuildMonthlyHolidayOmittedWithoutLog(t *testing.T) {
	holidays := []model.Holiday{{Date: date("2025-06-09"), Name: "Pünkösdhétfő"}}

	days, err := BuildMonthly(2025, time.June, nil, holidays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 20 {
		t.Fatalf("expected 20 days with holiday omitted, got %d", len(days))
	}
	for _, d := range days {
		if d.Date == "2025-06-09" {
			t.Error("unlogged holiday should be omitted from the summary")
		}
	}
}

func TestBuildMonthlyHolidayWithLogIsFlagged(t *testing.T) {
	logs := []model.WorkLog{workLog("2025-06-09", "08:00", "12:00", 0, 4)}
	holidays := []model.Holiday{{Date: date("2025-06-09"), Name: "Pünkösdhétfő"}}

	days, err := BuildMonthly(2025, time.June, logs, holidays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := findDay(t, days, "2025-06-09")
	if !d.IsHoliday {
		t.Error("logged holiday should be flagged")
	}
	if d.HolidayName != "Pünkösdhétfő" {
		t.Errorf("holiday name = %q", d.HolidayName)
	}
	if d.WorkedHours != 4 || d.WorkedMinutes != 0 {
		t.Errorf("worked = %d:%d, want 4:0", d.WorkedHours, d.WorkedMinutes)
	}
	if d.PlusMinusHours != -4 || d.PlusMinusMinutes != 0 {
		t.Errorf("delta = (%d, %d), want (-4, 0)", d.PlusMinusHours, d.PlusMinusMinutes)
	}
}

func TestBuildMonthlyLoggedDay(t *testing.T) {
	logs := []model.WorkLog{workLog("2025-06-03", "07:00", "17:00", 30, 9.5)}

	days, err := BuildMonthly(2025, time.June, logs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := findDay(t, days, "2025-06-03")
	if d.WorkedHours != 9 || d.WorkedMinutes != 30 {
		t.Errorf("worked = %d:%d, want 9:30", d.WorkedHours, d.WorkedMinutes)
	}
	if d.PlusMinusHours != 1 || d.PlusMinusMinutes != 30 {
		t.Errorf("delta = (%d, %d), want (1, 30)", d.PlusMinusHours, d.PlusMinusMinutes)
	}
	if d.PlusMinusLabel != "1 óra 30 perc" {
		t.Errorf("label = %q", d.PlusMinusLabel)
	}
}

func TestBuildMonthlyAscendingAndIdempotent(t *testing.T) {
	logs := []model.WorkLog{
		workLog("2025-06-20", "07:00", "15:20", 20, 8),
		workLog("2025-06-03", "07:00", "15:20", 20, 8),
	}

	first, err := BuildMonthly(2025, time.June, logs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].Date >= first[i].Date {
			t.Fatalf("dates out of order: %s before %s", first[i-1].Date, first[i].Date)
		}
	}

	second, err := BuildMonthly(2025, time.June, logs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("recompute changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("day %d differs between recomputes", i)
		}
	}
}

func TestBuildMonthTotal(t *testing.T) {
	tests := []struct {
		name  string
		days  []dto.DaySummary
		want  dto.MonthTotal
	}{
		{
			name: "defaults only accumulate shortfall",
			days: []dto.DaySummary{
				{PlusMinusHours: 0, PlusMinusMinutes: -20},
				{PlusMinusHours: 0, PlusMinusMinutes: -20},
				{PlusMinusHours: 0, PlusMinusMinutes: -20},
			},
			want: dto.MonthTotal{Sign: "-", Hours: 1, Minutes: 0, Label: "-1 óra 0 perc"},
		},
		{
			name: "overtime outweighs shortfall",
			days: []dto.DaySummary{
				{PlusMinusHours: 2, PlusMinusMinutes: 0},
				{PlusMinusHours: 0, PlusMinusMinutes: -20},
			},
			want: dto.MonthTotal{Sign: "+", Hours: 1, Minutes: 40, Label: "+1 óra 40 perc"},
		},
		{
			name: "negative hours add their minutes",
			days: []dto.DaySummary{
				{PlusMinusHours: -1, PlusMinusMinutes: 30},
			},
			want: dto.MonthTotal{Sign: "-", Hours: 1, Minutes: 30, Label: "-1 óra 30 perc"},
		},
		{
			name: "empty month is plus zero",
			days: nil,
			want: dto.MonthTotal{Sign: "+", Hours: 0, Minutes: 0, Label: "+0 óra 0 perc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildMonthTotal(tt.days); got != tt.want {
				t.Errorf("BuildMonthTotal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
