package summary

import (
	"testing"

	"github.com/verebtamas/munkaido-hub/internal/model"
)

func TestBuildStatsGroupsAndRounds(t *testing.T) {
	logs := []model.WorkLog{
		workLog("2025-03-03", "07:00", "15:20", 20, 8),
		workLog("2025-03-04", "07:00", "14:35", 20, 7.25),
		workLog("2025-03-05", "07:00", "15:20", 20, 8),
		workLog("2025-04-01", "09:00", "17:30", 30, 8),
	}

	got := BuildStats(logs)

	if len(got.Months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(got.Months))
	}

	march := got.Months[0]
	if march.MonthKey != "2025-03" || march.Month != "2025 Már" {
		t.Errorf("march keys = (%q, %q)", march.MonthKey, march.Month)
	}
	if march.WorkDays != 3 {
		t.Errorf("march work days = %d, want 3", march.WorkDays)
	}
	if march.TotalHours != 23.3 {
		t.Errorf("march total = %v, want 23.3", march.TotalHours)
	}
	if march.AverageHours != 7.8 {
		t.Errorf("march average = %v, want 7.8", march.AverageHours)
	}

	april := got.Months[1]
	if april.MonthKey != "2025-04" || april.Month != "2025 Ápr" {
		t.Errorf("april keys = (%q, %q)", april.MonthKey, april.Month)
	}

	if got.TotalWorkDays != 4 {
		t.Errorf("total work days = %d, want 4", got.TotalWorkDays)
	}
	if got.TotalHours != 31.3 {
		t.Errorf("total hours = %v, want 31.3", got.TotalHours)
	}
	if got.OverallAverage != 7.8 {
		t.Errorf("overall average = %v, want 7.8", got.OverallAverage)
	}
}

func TestBuildStatsOrdersByCanonicalKey(t *testing.T) {
	logs := []model.WorkLog{
		workLog("2025-02-03", "07:00", "15:20", 20, 8),
		workLog("2024-12-02", "07:00", "15:20", 20, 8),
		workLog("2025-01-06", "07:00", "15:20", 20, 8),
	}

	got := BuildStats(logs)

	wantKeys := []string{"2024-12", "2025-01", "2025-02"}
	for i, want := range wantKeys {
		if got.Months[i].MonthKey != want {
			t.Errorf("month %d key = %q, want %q", i, got.Months[i].MonthKey, want)
		}
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	got := BuildStats(nil)
	if len(got.Months) != 0 || got.TotalWorkDays != 0 || got.TotalHours != 0 || got.OverallAverage != 0 {
		t.Errorf("empty stats should be all-zero, got %+v", got)
	}
}

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"2025-01", "2025 Jan"},
		{"2025-09", "2025 Szep"},
		{"2025-12", "2025 Dec"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := MonthLabel(tt.key); got != tt.want {
			t.Errorf("MonthLabel(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
